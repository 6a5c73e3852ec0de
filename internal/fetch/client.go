// Package fetch talks to the remote inventory search and dealer detail APIs.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"sienna-watch/internal/model"
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	inventoryEndpoint = "https://api.search-inventory.toyota.com/graphql"
	dealerEndpoint    = "https://api.dg.toyota.com/api/v2/dealers/%s?brand=toyota"
	leadID            = "800c67b5-b4d0-4d47-acca-a26b4cfb6f1c"
	userAgent         = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"
)

const graphqlQuery = `
query {
    locateVehiclesByZip(
        zipCode: "%s",
        brand: "TOYOTA",
        pageNo: %d,
        pageSize: %d,
        seriesCodes: "sienna",
        distance: %d,
        leadid: "%s"
      ) {
      pagination {
        pageNo
        pageSize
        totalPages
        totalRecords
      }
      vehicleSummary {
        vin
        stockNum
        brand
        marketingSeries
        year
        isTempVin
        dealerCd
        dealerCategory
        distributorCd
        holdStatus
        weightRating
        isPreSold
        dealerMarketingName
        dealerWebsite
        isSmartPath
        distance
        isUnlockPriceDealer
        transmission { transmissionType }
        price {
          advertizedPrice
          nonSpAdvertizedPrice
          totalMsrp
          sellingPrice
          dph
          dioTotalMsrp
          dioTotalDealerSellingPrice
          dealerCashApplied
          baseMsrp
        }
        options {
          optionCd
          marketingName
          marketingLongName
          optionType
          packageInd
        }
        mpg { city highway combined }
        model { modelCd marketingName marketingTitle }
        media { type href imageTag source }
        intColor { colorCd colorSwatch marketingName nvsName colorFamilies }
        extColor { colorCd colorSwatch marketingName colorHexCd nvsName colorFamilies }
        eta { currFromDate currToDate }
        engine { engineCd name }
        drivetrain { code title bulletlist }
        family
        cab { code title bulletlist }
        bed { code title bulletlist }
      }
    }
  }
`

// Query describes one inventory search.
type Query struct {
	Zip           string
	PageSize      int
	DistanceMiles int
}

// Pagination is the paging block of a search response.
type Pagination struct {
	PageNo       int `json:"pageNo"`
	PageSize     int `json:"pageSize"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
}

// Page is one page of search results.
type Page struct {
	Pagination     Pagination      `json:"pagination"`
	VehicleSummary []model.Listing `json:"vehicleSummary"`
}

type searchEnvelope struct {
	Data struct {
		LocateVehiclesByZip *Page `json:"locateVehiclesByZip"`
	} `json:"data"`
}

// Client fetches inventory pages and dealer detail documents.
type Client struct {
	client   HTTPClient
	wafToken string
}

// NewClient creates a Client using the given HTTP client.
func NewClient(client HTTPClient, wafToken string) *Client {
	return &Client{client: client, wafToken: wafToken}
}

// LoadPage fetches a single page of search results. A nil page means the
// endpoint signalled the end of pagination.
func (c *Client) LoadPage(ctx context.Context, q Query, pageNo int) (*Page, error) {
	query := fmt.Sprintf(graphqlQuery, q.Zip, pageNo, q.PageSize, q.DistanceMiles, leadID)
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, inventoryEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned %d: %s", resp.StatusCode, data)
	}

	var env searchEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return env.Data.LocateVehiclesByZip, nil
}

// LoadAll walks the pagination until the last page and returns every listing.
func (c *Client) LoadAll(ctx context.Context, q Query) ([]model.Listing, error) {
	var listings []model.Listing
	for pageNo := 1; pageNo < 1000; pageNo++ {
		log.Printf("Loading page %d...", pageNo)
		page, err := c.LoadPage(ctx, q, pageNo)
		if err != nil {
			return nil, err
		}
		if page == nil {
			break
		}
		listings = append(listings, page.VehicleSummary...)
		log.Printf("Have responses: %d", len(listings))
		if pageNo >= page.Pagination.TotalPages {
			break
		}
	}
	return listings, nil
}

// FetchDealer fetches the dealer detail document for a dealer code. The
// document is returned verbatim; the caller decides where to persist it.
func (c *Client) FetchDealer(ctx context.Context, dealerCode string) (json.RawMessage, error) {
	url := fmt.Sprintf(dealerEndpoint, dealerCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get dealer %s: %w", dealerCode, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dealer %s: %w", dealerCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dealer %s returned %d: %s", dealerCode, resp.StatusCode, data)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("dealer %s: malformed response", dealerCode)
	}
	return data, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cache-Key", "vehicles-22124-sienna-100")
	req.Header.Set("X-Aws-Waf-Token", c.wafToken)
}
