package sheets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"leetcode-digest/internal/domain/model"
	"leetcode-digest/internal/domain/ports"
)

var (
	// ErrCredentialsMissing is returned when the service account key file does not exist.
	ErrCredentialsMissing = errors.New("google credentials file not found")
	// ErrSheetNotFound is returned when the named spreadsheet cannot be found or opened.
	ErrSheetNotFound = errors.New("spreadsheet not found")
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// Settings identifies the spreadsheet to read. Endpoint and HTTPClient
// override the Google API base URL and transport; a custom HTTPClient is
// used as-is and skips service account authentication.
type Settings struct {
	CredentialsFile string
	SheetName       string
	SheetID         string
	Timeout         time.Duration
	Endpoint        string
	HTTPClient      *http.Client
}

// Client implements ports.QuestionSource on top of the first worksheet of a spreadsheet.
type Client struct {
	sheets   *sheets.Service
	drive    *drive.Service
	settings Settings
	logger   ports.Logger
}

var _ ports.QuestionSource = (*Client)(nil)

// New authenticates with a service account key file.
func New(ctx context.Context, settings Settings, logger ports.Logger) (*Client, error) {
	var opts []option.ClientOption
	if settings.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(settings.HTTPClient))
	} else {
		if _, err := os.Stat(settings.CredentialsFile); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCredentialsMissing, settings.CredentialsFile)
		}
		opts = append(opts,
			option.WithCredentialsFile(settings.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsReadonlyScope, drive.DriveMetadataReadonlyScope),
		)
	}
	if settings.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(settings.Endpoint))
	}

	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &Client{sheets: sheetsSvc, drive: driveSvc, settings: settings, logger: logger}, nil
}

// LoadQuestions reads every row of the first worksheet keyed by the header row.
func (c *Client) LoadQuestions(ctx context.Context) ([]model.Question, error) {
	if c.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.settings.Timeout)
		defer cancel()
	}

	id, err := c.resolveSpreadsheetID(ctx)
	if err != nil {
		return nil, err
	}

	meta, err := c.sheets.Spreadsheets.Get(id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, classify(err, c.sheetLabel())
	}
	if len(meta.Sheets) == 0 || meta.Sheets[0].Properties == nil {
		return nil, fmt.Errorf("%w: %s has no worksheets", ErrSheetNotFound, c.sheetLabel())
	}

	title := meta.Sheets[0].Properties.Title
	values, err := c.sheets.Spreadsheets.Values.Get(id, quoteSheetTitle(title)).Context(ctx).Do()
	if err != nil {
		return nil, classify(err, c.sheetLabel())
	}

	questions := RecordsFromValues(values.Values)
	if c.logger != nil {
		c.logger.Info(ctx, "loaded records from google sheets", "sheet", c.sheetLabel(), "worksheet", title, "count", len(questions))
	}
	return questions, nil
}

func (c *Client) resolveSpreadsheetID(ctx context.Context) (string, error) {
	if c.settings.SheetID != "" {
		return c.settings.SheetID, nil
	}
	if c.settings.SheetName == "" {
		return "", errors.New("SHEET_NAME is not set")
	}

	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(c.settings.SheetName, "'", `\'`), spreadsheetMimeType)
	list, err := c.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("search spreadsheet %q: %w", c.settings.SheetName, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, c.settings.SheetName)
	}
	return list.Files[0].Id, nil
}

func (c *Client) sheetLabel() string {
	if c.settings.SheetName != "" {
		return c.settings.SheetName
	}
	return c.settings.SheetID
}

func classify(err error, label string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, label)
	}
	return fmt.Errorf("access google sheets: %w", err)
}

func quoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
