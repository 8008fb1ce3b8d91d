package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"codequiz/internal/config"
	"codequiz/internal/domain"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const defaultRequestTimeout = 10 * time.Second

// GoogleSheetsClient implements domain.GridSource on top of the Sheets v4 API.
type GoogleSheetsClient struct {
	svc     *gsheets.Service
	timeout time.Duration
}

// NewGoogleSheetsClient creates a read-only Sheets client from cfg.
// It returns a CONFIGURATION_MISSING error when no credentials are configured.
func NewGoogleSheetsClient(ctx context.Context, cfg config.SheetsConfig) (*GoogleSheetsClient, error) {
	opts, err := clientOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &GoogleSheetsClient{svc: svc, timeout: timeout}, nil
}

func clientOptions(ctx context.Context, cfg config.SheetsConfig) ([]option.ClientOption, error) {
	if !cfg.HasCredentials() && cfg.Endpoint == "" {
		return nil, domain.NewConfigurationMissingError("sheets credentials (credentials_file, credentials_json or api_key)")
	}

	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opt, err := serviceAccountOption(ctx, []byte(cfg.CredentialsJSON))
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	case cfg.CredentialsFile != "":
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, domain.NewError(domain.CodeConfigurationMissing,
				fmt.Sprintf("Cannot read credentials file %s", cfg.CredentialsFile), err)
		}
		opt, err := serviceAccountOption(ctx, data)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	default:
		// Only an endpoint override is set; emulators and test servers accept
		// anonymous requests.
		opts = append(opts, option.WithoutAuthentication())
	}

	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	return opts, nil
}

func serviceAccountOption(ctx context.Context, data []byte) (option.ClientOption, error) {
	jwtCfg, err := google.JWTConfigFromJSON(data, gsheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, domain.NewError(domain.CodeConfigurationMissing, "Invalid service account credentials", err)
	}
	return option.WithHTTPClient(jwtCfg.Client(ctx)), nil
}

// FetchGrid reads every populated row of tab, header row included.
// Cells come back as their formatted text; trailing empty cells are omitted
// by the API, so rows may have different lengths.
func (c *GoogleSheetsClient) FetchGrid(ctx context.Context, sheetID, tab string) ([][]string, error) {
	if strings.TrimSpace(sheetID) == "" {
		return nil, domain.NewConfigurationMissingError("sheets.spreadsheet_id")
	}
	if strings.TrimSpace(tab) == "" {
		return nil, domain.NewConfigurationMissingError("sheets.tab")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.Get(sheetID, quoteRange(tab)).
		ValueRenderOption("FORMATTED_VALUE").
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return nil, domain.NewSourceUnavailableError(
				fmt.Sprintf("Spreadsheet %s or tab %q not found", sheetID, tab), err)
		}
		return nil, domain.NewSourceUnavailableError("Failed to read question sheet", err)
	}

	return toGrid(resp.Values), nil
}

// quoteRange turns a tab title into an A1 range covering the whole tab.
func quoteRange(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}

func toGrid(values [][]interface{}) [][]string {
	grid := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			switch tv := v.(type) {
			case string:
				cells[j] = tv
			case nil:
				cells[j] = ""
			default:
				cells[j] = fmt.Sprint(tv)
			}
		}
		grid[i] = cells
	}
	return grid
}
