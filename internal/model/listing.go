package model

// Listing mirrors one vehicleSummary entry returned by the inventory search
// API. Field names follow the GraphQL response shape so a fetched dump can be
// written out and read back without loss.
type Listing struct {
	VIN                 string       `json:"vin"`
	StockNum            string       `json:"stockNum"`
	Brand               string       `json:"brand"`
	MarketingSeries     string       `json:"marketingSeries"`
	Year                int          `json:"year"`
	IsTempVIN           bool         `json:"isTempVin"`
	DealerCd            string       `json:"dealerCd"`
	DealerCategory      string       `json:"dealerCategory"`
	DistributorCd       string       `json:"distributorCd"`
	HoldStatus          string       `json:"holdStatus"`
	WeightRating        float64      `json:"weightRating"`
	IsPreSold           bool         `json:"isPreSold"`
	DealerMarketingName string       `json:"dealerMarketingName"`
	DealerWebsite       string       `json:"dealerWebsite"`
	IsSmartPath         bool         `json:"isSmartPath"`
	Distance            float64      `json:"distance"`
	IsUnlockPriceDealer bool         `json:"isUnlockPriceDealer"`
	Transmission        Transmission `json:"transmission"`
	Price               Price        `json:"price"`
	Options             []Option     `json:"options"`
	MPG                 MPG          `json:"mpg"`
	Model               ModelInfo    `json:"model"`
	Media               []Media      `json:"media"`
	IntColor            Color        `json:"intColor"`
	ExtColor            Color        `json:"extColor"`
	ETA                 ETA          `json:"eta"`
	Engine              Engine       `json:"engine"`
	Drivetrain          Attribute    `json:"drivetrain"`
	Family              string       `json:"family"`
	Cab                 *Attribute   `json:"cab"`
	Bed                 *Attribute   `json:"bed"`
}

// Transmission describes the transmission block of a listing.
type Transmission struct {
	TransmissionType string `json:"transmissionType"`
}

// Price holds the pricing block of a listing. Absent or null values
// deserialize to zero.
type Price struct {
	AdvertizedPrice            float64 `json:"advertizedPrice"`
	NonSpAdvertizedPrice       float64 `json:"nonSpAdvertizedPrice"`
	TotalMsrp                  float64 `json:"totalMsrp"`
	SellingPrice               float64 `json:"sellingPrice"`
	DPH                        float64 `json:"dph"`
	DioTotalMsrp               float64 `json:"dioTotalMsrp"`
	DioTotalDealerSellingPrice float64 `json:"dioTotalDealerSellingPrice"`
	DealerCashApplied          float64 `json:"dealerCashApplied"`
	BaseMsrp                   float64 `json:"baseMsrp"`
}

// Option is one factory or dealer-installed option code on a listing.
type Option struct {
	OptionCd          string `json:"optionCd"`
	MarketingName     string `json:"marketingName"`
	MarketingLongName string `json:"marketingLongName"`
	OptionType        string `json:"optionType"`
	PackageInd        string `json:"packageInd"`
}

// MPG holds fuel-economy figures.
type MPG struct {
	City     int `json:"city"`
	Highway  int `json:"highway"`
	Combined int `json:"combined"`
}

// ModelInfo identifies the model and trim of a listing.
type ModelInfo struct {
	ModelCd        string `json:"modelCd"`
	MarketingName  string `json:"marketingName"`
	MarketingTitle string `json:"marketingTitle"`
}

// Media is one image or video entry attached to a listing.
type Media struct {
	Type     string `json:"type"`
	Href     string `json:"href"`
	ImageTag string `json:"imageTag"`
	Source   string `json:"source"`
}

// Color describes an interior or exterior color.
type Color struct {
	ColorCd       string   `json:"colorCd"`
	ColorSwatch   string   `json:"colorSwatch"`
	MarketingName string   `json:"marketingName"`
	ColorHexCd    string   `json:"colorHexCd"`
	NvsName       string   `json:"nvsName"`
	ColorFamilies []string `json:"colorFamilies"`
}

// ETA is the estimated delivery window for an in-transit vehicle.
type ETA struct {
	CurrFromDate string `json:"currFromDate"`
	CurrToDate   string `json:"currToDate"`
}

// Engine describes the engine block of a listing.
type Engine struct {
	EngineCd string `json:"engineCd"`
	Name     string `json:"name"`
}

// Attribute is a coded attribute with display text (drivetrain, cab, bed).
type Attribute struct {
	Code       string   `json:"code"`
	Title      string   `json:"title"`
	Bulletlist []string `json:"bulletlist"`
}
