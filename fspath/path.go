// Package fspath provides Path, a validated file system path value,
// together with helpers to inspect, rename and stamp it and to read,
// write, copy and move the file it points to.
package fspath

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/eagleviewent/go-utilities/value"
)

// reservedNames are device names that cannot be used as file names.
var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

type pathRule struct{}

func (pathRule) Name() string { return "Path" }

func (pathRule) CaseInsensitive() bool { return true }

func (pathRule) Validate(s string) bool {
	if s == "" {
		return true
	}

	if strings.ContainsRune(s, 0) {
		return false
	}

	if _, reserved := reservedNames[strings.ToUpper(filepath.Base(s))]; reserved {
		return false
	}

	_, err := filepath.Abs(s)

	return err == nil
}

// Path is a trimmed file system path. Equality ignores case.
// The zero value is the empty path.
type Path struct {
	value.Validated[pathRule]
}

// NewPath trims and validates raw. A non-empty path must not contain
// NUL, must not name a reserved device and must resolve to an
// absolute path.
func NewPath(raw string) (Path, error) {
	v, err := value.New[pathRule](raw)
	if err != nil {
		return Path{}, err
	}

	return Path{v}, nil
}

// MustPath returns p if err is nil and panics otherwise.
func MustPath(p Path, err error) Path {
	if err != nil {
		panic(err)
	}

	return p
}

// Join joins elem onto p and validates the result.
func (p Path) Join(elem ...string) (Path, error) {
	return NewPath(filepath.Join(append([]string{p.Raw()}, elem...)...))
}

// Equal reports whether both paths are the same, ignoring case.
func (p Path) Equal(x Path) bool {
	return p.Validated.Equal(x.Validated)
}

// FileName returns the last element of the path, or "" for the empty path.
func (p Path) FileName() string {
	if p.IsEmpty() {
		return ""
	}

	return filepath.Base(p.Raw())
}

// FileExt returns the extension of the file name including the dot.
func (p Path) FileExt() string {
	return filepath.Ext(p.Raw())
}

// Ext returns the extension of the file name, optionally without the dot.
func (p Path) Ext(withoutDot bool) string {
	ext := p.FileExt()

	if withoutDot {
		return strings.TrimPrefix(ext, ".")
	}

	return ext
}

// FileNameWithoutExt returns the file name with its extension removed.
func (p Path) FileNameWithoutExt() string {
	name := p.FileName()

	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Dir returns the directory holding the file, or the empty path.
func (p Path) Dir() Path {
	if p.IsEmpty() {
		return Path{}
	}

	return Path{value.NewUnchecked[pathRule](filepath.Dir(p.Raw()))}
}

// LastDir returns the name of the directory holding the file.
func (p Path) LastDir() string {
	if p.IsEmpty() {
		return ""
	}

	dir := filepath.Dir(p.Raw())
	if dir == "." || dir == string(filepath.Separator) {
		return ""
	}

	return filepath.Base(dir)
}

// Root returns the root of an absolute path, e.g. "/" or `C:\`,
// and "" for a relative one.
func (p Path) Root() string {
	raw := p.Raw()

	if !filepath.IsAbs(raw) {
		return ""
	}

	return filepath.VolumeName(raw) + string(filepath.Separator)
}

// IsURI reports whether the path carries a URI scheme, e.g. "file://".
func (p Path) IsURI() bool {
	return strings.Contains(p.Raw(), "://")
}

// ChangeExt returns p with its extension replaced by ext, which must
// start with a dot. The empty path is returned unchanged.
func (p Path) ChangeExt(ext string) (Path, error) {
	if !strings.HasPrefix(ext, ".") {
		return Path{}, errors.NewInvalidArgument("extension must start with '.', got '%s'", ext)
	}

	if p.IsEmpty() {
		return p, nil
	}

	raw := p.Raw()

	return NewPath(strings.TrimSuffix(raw, filepath.Ext(raw)) + ext)
}

// StampLocation tells StampedName where to put the date time stamp.
type StampLocation uint8

const (
	// StampNone removes an existing stamp.
	StampNone StampLocation = iota
	// StampPrepend puts the stamp before the file name.
	StampPrepend
	// StampAppend puts the stamp after the file name, before the extension.
	StampAppend
)

// stampLayout is RFC 3339 with seven fractional digits and no colons,
// so the stamp is valid in file names on every platform.
const stampLayout = "2006-01-02T150405.0000000-0700"

var stampPattern = regexp.MustCompile(
	`\[[0-9]{4}-[0-9]{2}-[0-9]{1,2}T[^\]]*\]_|_\[[0-9]{4}-[0-9]{2}-[0-9]{1,2}[^\]]*\]`,
)

// StampedName returns p with its file name stamped with now, e.g.
// "[2024-03-01T120000.0000000+0000]_report.csv" for StampPrepend or
// "report_[2024-03-01T120000.0000000+0000].csv" for StampAppend.
// StampNone strips any stamp previously added.
func (p Path) StampedName(loc StampLocation, now time.Time) (Path, error) {
	if p.IsEmpty() {
		return p, nil
	}

	var (
		name  = p.FileName()
		stamp = "[" + now.Format(stampLayout) + "]"
	)

	switch loc {
	case StampPrepend:
		name = stamp + "_" + name
	case StampAppend:
		name = p.FileNameWithoutExt() + "_" + stamp + p.FileExt()
	case StampNone:
		name = stampPattern.ReplaceAllString(name, "")
	default:
		return Path{}, errors.NewInvalidArgument("unknown stamp location %d", loc)
	}

	return NewPath(filepath.Join(filepath.Dir(p.Raw()), name))
}
