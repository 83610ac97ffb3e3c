package opendart

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	companyentity "stock_dashboard/internal/feature/companies/domain/entity"
	companiesusecase "stock_dashboard/internal/feature/companies/usecase"
	"stock_dashboard/internal/feature/dividends/domain/entity"
	dividendsusecase "stock_dashboard/internal/feature/dividends/usecase"
	"stock_dashboard/internal/platform/externalapi/opendart/dto"
)

const (
	// statusOK is DART's success status.
	statusOK = "000"
	// statusNoData means the company filed nothing for the requested year.
	statusNoData = "013"
	// annualReportCode selects the annual report (사업보고서) disclosure.
	annualReportCode = "11011"
)

// Client calls the DART open API. It implements the dividends feature's
// DisclosureRepository and the companies feature's CorpCodeSource.
type Client struct {
	cfg    Config
	client *http.Client
}

var (
	_ dividendsusecase.DisclosureRepository = (*Client)(nil)
	_ companiesusecase.CorpCodeSource       = (*Client)(nil)
)

// NewClient creates a DART API client with the given configuration and HTTP
// client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FindAllotments fetches the dividend disclosure rows (alotMatter dataset)
// for one company and business year. A "no data" status from DART is not an
// error: it yields an empty slice.
func (c *Client) FindAllotments(ctx context.Context, corpCode string, year int) ([]entity.DividendAllotment, error) {
	q := url.Values{}
	q.Set("crtfc_key", c.cfg.APIKey)
	q.Set("corp_code", corpCode)
	q.Set("bsns_year", strconv.Itoa(year))
	q.Set("reprt_code", annualReportCode)

	u := fmt.Sprintf("%s/api/alotMatter.json?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("opendart http %d", res.StatusCode)
	}

	var body dto.AlotMatterResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	switch body.Status {
	case statusOK:
	case statusNoData:
		return []entity.DividendAllotment{}, nil
	default:
		return nil, fmt.Errorf("opendart: %s (status %s)", body.Message, body.Status)
	}

	rows := make([]entity.DividendAllotment, 0, len(body.List))
	for _, v := range body.List {
		rows = append(rows, entity.DividendAllotment{
			ReceiptNo:   v.ReceiptNo,
			CorpClass:   v.CorpClass,
			CorpCode:    v.CorpCode,
			CorpName:    v.CorpName,
			Item:        v.Item,
			StockKind:   v.StockKind,
			CurrentTerm: v.CurrentTerm,
			PriorTerm:   v.PriorTerm,
			TwoPrior:    v.TwoPrior,
		})
	}
	return rows, nil
}

// FetchCorpCodes downloads DART's corporation code directory. The endpoint
// serves a zip archive containing a single CORPCODE.xml; when the request is
// rejected DART sends a JSON error body instead, which is surfaced with its
// message.
func (c *Client) FetchCorpCodes(ctx context.Context) ([]companyentity.Company, error) {
	q := url.Values{}
	q.Set("crtfc_key", c.cfg.APIKey)

	u := fmt.Sprintf("%s/api/corpCode.xml?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("opendart http %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		// Not a zip: DART rejected the request with a JSON error body.
		var apiErr dto.APIError
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Status != "" {
			return nil, fmt.Errorf("opendart: %s (status %s)", apiErr.Message, apiErr.Status)
		}
		return nil, fmt.Errorf("opendart: unexpected corpCode payload: %w", err)
	}

	doc, err := readCorpCodeFile(zr)
	if err != nil {
		return nil, err
	}

	companies := make([]companyentity.Company, 0, len(doc.List))
	for _, v := range doc.List {
		companies = append(companies, companyentity.Company{
			CorpCode:   strings.TrimSpace(v.CorpCode),
			StockCode:  strings.TrimSpace(v.StockCode),
			Name:       strings.TrimSpace(v.CorpName),
			ModifyDate: strings.TrimSpace(v.ModifyDate),
		})
	}
	return companies, nil
}

// readCorpCodeFile locates CORPCODE.xml inside the archive and parses it.
func readCorpCodeFile(zr *zip.Reader) (*dto.CorpCodeFile, error) {
	for _, f := range zr.File {
		if !strings.EqualFold(f.Name, "CORPCODE.xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := rc.Close(); err != nil {
				slog.Warn("failed to close zip entry", "error", err)
			}
		}()

		var doc dto.CorpCodeFile
		if err := xml.NewDecoder(rc).Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse CORPCODE.xml: %w", err)
		}
		return &doc, nil
	}
	return nil, fmt.Errorf("opendart: CORPCODE.xml not found in archive")
}
