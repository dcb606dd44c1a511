package storefront

import "bytes"

// Amount is a monetary value the backend serves either as a JSON
// number or as a quoted decimal string. It is kept as a string; this
// service displays amounts, it never does arithmetic on them.
type Amount string

// UnmarshalJSON accepts both representations.
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if string(b) == "null" {
		*a = ""
		return nil
	}
	*a = Amount(b)
	return nil
}

func (a Amount) String() string {
	return string(a)
}
