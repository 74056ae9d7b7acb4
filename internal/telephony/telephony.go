// Package telephony places outbound calls through Twilio so an interview can
// be triggered against a candidate's phone.
package telephony

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client wraps the Twilio REST API for outbound calls.
type Client struct {
	api  *twilio.RestClient
	from string
}

// NewClient builds a Twilio client using account credentials and the caller
// number calls are placed from.
func NewClient(accountSID, authToken, from string) *Client {
	api := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Client{api: api, from: from}
}

// Call dials the given number and points the call at a TwiML URL. Returns the
// call SID.
func (c *Client) Call(to, twimlURL string) (string, error) {
	params := &twilioapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetUrl(twimlURL)

	call, err := c.api.Api.CreateCall(params)
	if err != nil {
		return "", fmt.Errorf("failed to create call: %w", err)
	}
	if call.Sid == nil {
		return "", fmt.Errorf("call created without sid")
	}
	return *call.Sid, nil
}
