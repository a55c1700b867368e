package terminal

import (
	"fmt"

	"weekfold/format"
)

type Client struct {
	TimeFormat string
}

func (c *Client) Init() error {
	if c.TimeFormat == "" {
		c.TimeFormat = format.TimeClock
	}

	err := format.ValidateTimeFormat(c.TimeFormat)
	if err != nil {
		return fmt.Errorf("ValidateTimeFormat: %w", err)
	}
	return nil
}
