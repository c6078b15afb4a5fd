// Package checks implements validated value types for the fields
// printed on a paper check: the ABA routing number, the account number,
// the check number and the MICR line that combines them.
//
// Every type trims its input and rejects invalid values at construction
// with an error matching errors.ErrInvalidValue. Empty values are valid
// and represent an absent field. The Secured variants keep the real
// digits but render and serialize as "****" plus the last four digits.
//
// All types implement encoding.TextMarshaler/TextUnmarshaler (JSON
// strings, XML element text) and sql.Scanner/driver.Valuer.
package checks
