package form

import (
	"strings"

	"github.com/jateonwr/dem-survey/pkg/dom"
)

// PhoneLengthMessage is reported for phone numbers outside 9 or 10 digits.
const PhoneLengthMessage = "กรุณากรอก 9-10 หลัก"

// SanitizeDecimal keeps digits and the first decimal point.
func SanitizeDecimal(value string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Digits strips everything but ASCII digits.
func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone groups 9 digit numbers as 2-3-4 and 10 digit numbers as 3-3-4.
// Other lengths are returned as bare digits.
func FormatPhone(value string) string {
	d := Digits(value)
	switch len(d) {
	case 9:
		return d[:2] + "-" + d[2:5] + "-" + d[5:]
	case 10:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	default:
		return d
	}
}

// PhoneValidity returns PhoneLengthMessage for a non-empty number that is not
// 9 or 10 digits long.
func PhoneValidity(value string) string {
	n := len(Digits(value))
	if n > 0 && (n < 9 || n > 10) {
		return PhoneLengthMessage
	}
	return ""
}

func bindDecimal(c *dom.Control) {
	if c == nil {
		return
	}
	c.SetAttr("inputmode", "decimal")
	c.On(dom.EventInput, func(c *dom.Control) {
		c.SetValue(SanitizeDecimal(c.Value()))
		c.ClearError()
	})
}

func bindPhone(c *dom.Control) {
	if c == nil {
		return
	}
	c.SetAttr("inputmode", "numeric")
	c.On(dom.EventInput, func(c *dom.Control) {
		c.SetValue(Digits(c.Value()))
		c.ClearError()
	})
	c.On(dom.EventFocus, func(c *dom.Control) { c.SetValue(Digits(c.Value())) })
	c.On(dom.EventBlur, func(c *dom.Control) { c.SetValue(FormatPhone(c.Value())) })
}

// phoneCheck is the extra validator check for the agency phone.
func phoneCheck(c *dom.Control) string {
	if c.ID() != ContactPhone {
		return ""
	}
	return PhoneValidity(c.Value())
}
