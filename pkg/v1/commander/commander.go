package commander

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

//go:generate mockery --name Sender --filename sender.go

// ErrEmptyRetailer is returned when scrape command has no retailer.
var ErrEmptyRetailer = errors.New("retailer can't be empty")

// ScrapeCommand orders single scrape run of retailer.
type ScrapeCommand struct {
	Retailer string `json:"retailer"`
}

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// ScrapeCommander sends scrape commands.
type ScrapeCommander struct {
	sender Sender
}

// NewScrapeCommander returns new ScrapeCommander using provided sender for sending messages.
func NewScrapeCommander(sender Sender) ScrapeCommander {
	return ScrapeCommander{
		sender: sender,
	}
}

// SendScrapeCommand sends scrape command of retailer with provided name.
func (c ScrapeCommander) SendScrapeCommand(ctx context.Context, retailer string) error {
	cmd := ScrapeCommand{
		Retailer: strings.TrimSpace(retailer),
	}
	if cmd.Retailer == "" {
		return ErrEmptyRetailer
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal scrape command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}

// DecodeScrapeCommand decodes scrape command message.
func DecodeScrapeCommand(msg []byte) (*ScrapeCommand, error) {
	var cmd ScrapeCommand
	if err := json.Unmarshal(msg, &cmd); err != nil {
		return nil, fmt.Errorf("can't decode scrape command: %w", err)
	}

	cmd.Retailer = strings.TrimSpace(cmd.Retailer)
	if cmd.Retailer == "" {
		return nil, ErrEmptyRetailer
	}

	return &cmd, nil
}
