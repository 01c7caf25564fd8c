package datecolumn

import (
	"database/sql/driver"
	"fmt"

	"github.com/jecitDev/jec-imap-helper/pkg/imapDateTime"
)

// DateTimeColumn stores an IMAP date-time in a text column using its
// canonical string form. A nil V maps to SQL NULL in both directions.
type DateTimeColumn struct {
	V *imapdatetime.DateTime
}

func (c *DateTimeColumn) Scan(src any) error {
	if src == nil {
		c.V = nil
		return nil
	}

	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("cannot scan %T into DateTimeColumn", src)
	}

	parsed, err := imapdatetime.Parse(s)
	if err != nil {
		return err
	}
	c.V = &parsed
	return nil
}

func (c *DateTimeColumn) Value() (driver.Value, error) {
	if c.V == nil {
		return nil, nil
	}
	return imapdatetime.Format(*c.V), nil
}

func (c *DateTimeColumn) Get() *imapdatetime.DateTime {
	return c.V
}
