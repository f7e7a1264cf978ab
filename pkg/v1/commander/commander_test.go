package commander_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/MichalMitros/price-tracker/pkg/v1/commander"
	"github.com/MichalMitros/price-tracker/pkg/v1/commander/mocks"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSendScrapeCommand(t *testing.T) {
	retailer := faker.Word()
	body := []byte(fmt.Sprintf(`{"retailer":"%s"}`, retailer))

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, body).Return(tt.senderError)

			cmndr := commander.NewScrapeCommander(sender)
			err := cmndr.SendScrapeCommand(context.TODO(), " "+retailer+" ")

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

func TestUnitSendScrapeCommandEmptyRetailer(t *testing.T) {
	sender := mocks.NewSender(t)

	err := commander.NewScrapeCommander(sender).SendScrapeCommand(context.TODO(), "  ")

	require.ErrorIs(t, err, commander.ErrEmptyRetailer, "should return empty retailer error")
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestUnitDecodeScrapeCommand(t *testing.T) {
	tests := map[string]struct {
		msg     string
		want    *commander.ScrapeCommand
		wantErr bool
	}{
		"ok":             {msg: `{"retailer":"Megatone"}`, want: &commander.ScrapeCommand{Retailer: "Megatone"}},
		"trimmed":        {msg: `{"retailer":" Naldo "}`, want: &commander.ScrapeCommand{Retailer: "Naldo"}},
		"empty retailer": {msg: `{"retailer":""}`, wantErr: true},
		"missing field":  {msg: `{}`, wantErr: true},
		"malformed":      {msg: `{"retailer":`, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := commander.DecodeScrapeCommand([]byte(tt.msg))

			if tt.wantErr {
				assert.Error(t, err, "should return error")
				return
			}
			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.want, cmd, "should decode command")
		})
	}
}
