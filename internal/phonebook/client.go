package phonebook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bloglist/models"
)

// Client talks to the /api/persons REST surface.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

func (c *Client) GetAll(ctx context.Context) ([]models.Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/persons", nil)
	if err != nil {
		return nil, err
	}

	var contacts []models.Contact
	if err := c.do(req, http.StatusOK, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *Client) Create(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.BaseURL+"/api/persons", contact)
	if err != nil {
		return nil, err
	}

	var created models.Contact
	if err := c.do(req, http.StatusCreated, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) Update(ctx context.Context, id string, contact models.Contact) (*models.Contact, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, c.BaseURL+"/api/persons/"+id, contact)
	if err != nil {
		return nil, err
	}

	var updated models.Contact
	if err := c.do(req, http.StatusOK, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do sends the request and decodes the response into target. A response with
// an unexpected status is turned into an error carrying the server's message.
func (c *Client) do(req *http.Request, wantStatus int, target any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if target == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(target)
}
