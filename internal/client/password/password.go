// Package password classifies candidate passwords into coarse strength
// levels used to gate registration and password reset.
package password

// Strength is the coarse classification of a candidate password.
type Strength int

const (
	Empty Strength = iota
	Weak
	Mid
	Strong
)

func (s Strength) String() string {
	switch s {
	case Empty:
		return "empty"
	case Weak:
		return "weak"
	case Mid:
		return "mid"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// Policy thresholds. Mid requires MinLength and MinUppercase; Strong
// additionally requires MinDigits.
const (
	MinLength    = 10
	MinUppercase = 1
	MinDigits    = 2
)

// Report carries the strength level together with the sub-counts the
// progress indicators display ("X/10" characters, "Y/1" uppercase).
type Report struct {
	Length         int
	UppercaseCount int
	DigitCount     int
	Strength       Strength
}

// Evaluate classifies a candidate password. It is a pure function of the
// password string alone.
func Evaluate(pw string) Strength {
	return Check(pw).Strength
}

// Check classifies a candidate password and reports the character counts
// the policy is based on. Only ASCII uppercase letters and decimal digits
// are counted; no other character classes influence the result.
func Check(pw string) Report {
	var r Report
	for _, c := range pw {
		r.Length++
		switch {
		case c >= 'A' && c <= 'Z':
			r.UppercaseCount++
		case c >= '0' && c <= '9':
			r.DigitCount++
		}
	}

	if r.Length == 0 {
		r.Strength = Empty
		return r
	}
	r.Strength = Weak
	if r.Length >= MinLength && r.UppercaseCount >= MinUppercase {
		r.Strength = Mid
		if r.DigitCount >= MinDigits {
			r.Strength = Strong
		}
	}
	return r
}
