package uuidx

import (
	"database/sql/driver"
	"encoding/base64"
	"fmt"
)

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	return u.AppendEncode(make([]byte, 0, 36), StyleCanonical), nil
}

// AppendText implements the encoding.TextAppender interface
func (u UUID) AppendText(b []byte) ([]byte, error) {
	return u.AppendEncode(b, StyleCanonical), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// A 16 byte slice is taken as the binary form, any other slice or string
// is parsed as text.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		if src == "" {
			return nil
		}
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		return u.UnmarshalText(src)
	default:
		return fmt.Errorf("uuidx: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// NullUUID represents a UUID that may be SQL NULL
type NullUUID struct {
	UUID  UUID
	Valid bool
}

// Scan implements the sql.Scanner interface
func (n *NullUUID) Scan(src interface{}) error {
	if src == nil {
		n.UUID, n.Valid = Nil, false
		return nil
	}
	if err := n.UUID.Scan(src); err != nil {
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the driver.Valuer interface
func (n NullUUID) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.UUID.Value()
}

// MarshalText renders an invalid NullUUID as an empty string
func (n NullUUID) MarshalText() ([]byte, error) {
	if !n.Valid {
		return []byte{}, nil
	}
	return n.UUID.MarshalText()
}

// UnmarshalText treats an empty input as NULL
func (n *NullUUID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		n.UUID, n.Valid = Nil, false
		return nil
	}
	if err := n.UUID.UnmarshalText(data); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// DecodeFromHex decodes 32 hex digits without hyphens
func DecodeFromHex(s string) (UUID, error) {
	return ParseForm(s, FormSimple)
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	return decodeBase64(base64.RawURLEncoding, s)
}

// DecodeFromBase64Std decodes a standard base64 string to UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	return decodeBase64(base64.StdEncoding, s)
}

func decodeBase64(enc *base64.Encoding, s string) (UUID, error) {
	var uuid UUID
	if enc.DecodedLen(len(s)) > 18 {
		return uuid, ErrInvalidLength
	}
	var buf [18]byte
	n, err := enc.Decode(buf[:], []byte(s))
	if err != nil {
		return uuid, ErrBadFormat
	}
	if n != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], buf[:n])
	return uuid, nil
}
