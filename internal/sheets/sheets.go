// Package sheets writes planning output to a Google spreadsheet. It handles
// the desktop OAuth flow, opens the output sheet by title or creates it in a
// Drive folder, and appends result rows.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var scopes = []string{
	sheets.SpreadsheetsScope,
	drive.DriveFileScope,
}

// Spreadsheet is a handle to an opened or created spreadsheet.
type Spreadsheet struct {
	ID    string
	Title string
	URL   string
}

// Client talks to the Sheets and Drive APIs with one authorized identity.
type Client struct {
	sheets *sheets.Service
	drive  *drive.Service
}

// NewClient authorizes against Google using the OAuth client in
// credentialsFile and the cached token in tokenFile. A missing or rejected
// token triggers the interactive desktop flow once; the fresh token is saved
// back to tokenFile.
func NewClient(ctx context.Context, credentialsFile, tokenFile string) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", credentialsFile, err)
	}
	cfg, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth client config: %w", err)
	}

	token, err := tokenFromFile(tokenFile)
	if err != nil {
		log.Printf("No valid token found, initiating new OAuth2 flow...")
		token, err = authorize(ctx, cfg)
		if err != nil {
			return nil, err
		}
		saveToken(tokenFile, token)
	}

	client, err := newClientWithToken(ctx, cfg, token)
	if err == nil {
		if verifyErr := client.verify(ctx); verifyErr == nil {
			return client, nil
		} else {
			log.Printf("Stored credentials were rejected: %v", verifyErr)
		}
	}

	// The stored token is unusable. Remove it and run the flow once more.
	log.Printf("Re-authenticating from scratch...")
	if err := os.Remove(tokenFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not remove token file: %v", err)
	}
	token, err = authorize(ctx, cfg)
	if err != nil {
		return nil, err
	}
	saveToken(tokenFile, token)
	return newClientWithToken(ctx, cfg, token)
}

func newClientWithToken(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*Client, error) {
	httpClient := cfg.Client(ctx, token)
	sheetsSrv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	driveSrv, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{sheets: sheetsSrv, drive: driveSrv}, nil
}

// verify makes a cheap call to prove the credentials work.
func (c *Client) verify(ctx context.Context) error {
	_, err := c.drive.Files.List().PageSize(1).Fields("files(id)").Context(ctx).Do()
	return err
}

// authorize runs the desktop OAuth flow: print the URL, read the code back.
func authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open this link in your browser, then paste the authorization code:\n%s\n> ", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("failed to read authorization code: %w", err)
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Printf("Warning: could not save token to %s: %v", path, err)
		return
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(token); err != nil {
		log.Printf("Warning: could not write token: %v", err)
		return
	}
	log.Printf("Token saved to %s", path)
}

// CreateOrOpen opens the spreadsheet with the given title, creating it when
// it does not exist. New spreadsheets go into folderID; if moving there fails
// the spreadsheet stays in the Drive root with a warning.
func (c *Client) CreateOrOpen(ctx context.Context, title, folderID string) (*Spreadsheet, error) {
	query := fmt.Sprintf(
		"name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		title)
	list, err := c.drive.Files.List().Q(query).PageSize(1).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search for spreadsheet %q: %w", title, err)
	}

	if len(list.Files) > 0 {
		f := list.Files[0]
		log.Printf("Spreadsheet %q already exists (opened).", title)
		return &Spreadsheet{ID: f.Id, Title: f.Name, URL: sheetURL(f.Id)}, nil
	}

	log.Printf("Spreadsheet %q not found. Creating new one...", title)
	created, err := c.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet %q: %w", title, err)
	}

	if folderID != "" {
		_, err := c.drive.Files.Update(created.SpreadsheetId, nil).
			AddParents(folderID).
			RemoveParents("root").
			Context(ctx).Do()
		if err != nil {
			log.Printf("Warning: could not move spreadsheet into folder %s: %v. Leaving it in the root.", folderID, err)
		}
	}

	return &Spreadsheet{
		ID:    created.SpreadsheetId,
		Title: title,
		URL:   sheetURL(created.SpreadsheetId),
	}, nil
}

// AppendRows appends rows after the current content of the first sheet.
func (c *Client) AppendRows(ctx context.Context, spreadsheetID string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	vr := &sheets.ValueRange{Values: rows}
	_, err := c.sheets.Spreadsheets.Values.Append(spreadsheetID, "A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append %d rows: %w", len(rows), err)
	}
	return nil
}

func sheetURL(id string) string {
	return "https://docs.google.com/spreadsheets/d/" + id
}
