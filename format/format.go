package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format is an output format of the yflow tool. The zero value is the
// inline flow form that Dump produces.
type Format int

const (
	FlowFormat Format = iota
	YAMLFormat
	JSONFormat
)

var formatNames = [...]string{
	FlowFormat: "flow",
	YAMLFormat: "yaml",
	JSONFormat: "json",
}

var (
	ErrBadFormat  = errors.New("bad format")
	ErrBadVersion = errors.New("bad spec version")
)

// ParseFormat reads a format name or its first letter, ignoring case.
func ParseFormat(v string) (Format, error) {
	lv := strings.ToLower(v)
	for f, name := range formatNames {
		if lv == name || (len(lv) == 1 && lv[0] == name[0]) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formatNames)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(formatNames[f]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsJSON reports whether f is JSON, which has no infinities.
func (f Format) IsJSON() bool { return f == JSONFormat }

// Version selects the boolean vocabulary shared by scalar evaluation and
// dumping. Version11 recognizes yes/no/on/off/y/n/+/- as booleans, any
// other version only true and false.
type Version string

const (
	Version11 Version = "1.1"
	Version12 Version = "1.2"

	DefaultVersion = Version12
)

func ParseVersion(v string) (Version, error) {
	switch Version(v) {
	case Version11, Version12:
		return Version(v), nil
	case "":
		return DefaultVersion, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadVersion, v)
}

func (v Version) String() string {
	if v == "" {
		return string(DefaultVersion)
	}
	return string(v)
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(d []byte) error {
	pv, err := ParseVersion(string(d))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

// Is11 reports whether v selects the extended 1.1 vocabulary.
func (v Version) Is11() bool { return v == Version11 }
