package apimo

import (
	"time"

	"github.com/goliatone/go-apimo/catalog"
)

// NameIDPair is a referenced entity carried by id and display name.
type NameIDPair struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type City struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Zipcode string `json:"zipcode"`
}

type User struct {
	ID              int                `json:"id"`
	Agency          int                `json:"agency"`
	Active          bool               `json:"active"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Firstname       string             `json:"firstname"`
	Lastname        string             `json:"lastname"`
	Username        string             `json:"username,omitempty"`
	Password        string             `json:"password,omitempty"`
	Language        string             `json:"language"`
	SpokenLanguages []string           `json:"spoken_languages,omitempty"`
	Group           *catalog.EntryName `json:"group"`
	Email           string             `json:"email"`
	Phone           *string            `json:"phone"`
	Mobile          string             `json:"mobile"`
	Fax             *string            `json:"fax"`
	City            *NameIDPair        `json:"city,omitempty"`
	BirthdayAt      *time.Time         `json:"birthday_at"`
	Timezone        *string            `json:"timezone"`
	Picture         *string            `json:"picture"`
	Partners        []any              `json:"partners,omitempty"`
	Stories         []any              `json:"stories,omitempty"`
	Rates           any                `json:"rates"`
}

// Property is one listing with every catalog code resolved for the requested locale.
type Property struct {
	ID                 int                  `json:"id"`
	Reference          int                  `json:"reference"`
	Agency             int                  `json:"agency"`
	Brand              any                  `json:"brand"`
	Sector             any                  `json:"sector"`
	User               User                 `json:"user"`
	Step               *catalog.EntryName   `json:"step"`
	Status             *catalog.EntryName   `json:"status"`
	Parent             *int                 `json:"parent"`
	Ranking            any                  `json:"ranking"`
	Category           *catalog.EntryName   `json:"category"`
	Name               *string              `json:"name"`
	Type               *catalog.EntryName   `json:"type"`
	Subtype            *catalog.EntryName   `json:"subtype"`
	Agreement          *Agreement           `json:"agreement"`
	BlockName          *string              `json:"block_name"`
	LotReference       *string              `json:"lot_reference"`
	CadastreReference  *string              `json:"cadastre_reference"`
	StairsReference    *string              `json:"stairs_reference"`
	Address            *string              `json:"address"`
	AddressMore        *string              `json:"address_more"`
	PublishAddress     bool                 `json:"publish_address"`
	Country            string               `json:"country"`
	Region             NameIDPair           `json:"region"`
	City               City                 `json:"city"`
	OriginalCity       any                  `json:"original_city"`
	District           *NameIDPair          `json:"district"`
	OriginalDistrict   any                  `json:"original_district"`
	Location           any                  `json:"location"`
	Longitude          float64              `json:"longitude"`
	Latitude           float64              `json:"latitude"`
	Radius             float64              `json:"radius"`
	Altitude           float64              `json:"altitude"`
	Referral           any                  `json:"referral"`
	Subreferral        any                  `json:"subreferral"`
	Area               Surface              `json:"area"`
	Plot               Plot                 `json:"plot"`
	Rooms              int                  `json:"rooms"`
	Bedrooms           int                  `json:"bedrooms"`
	Sleeps             int                  `json:"sleeps"`
	Price              Price                `json:"price"`
	Rates              []any                `json:"rates"`
	Owner              any                  `json:"owner"`
	Visit              any                  `json:"visit"`
	Residence          *Residence           `json:"residence"`
	View               *View                `json:"view"`
	Construction       Construction         `json:"construction"`
	Floor              Floor                `json:"floor"`
	Heating            Heating              `json:"heating"`
	Water              Water                `json:"water"`
	Condition          *catalog.EntryName   `json:"condition"`
	Standing           *catalog.EntryName   `json:"standing"`
	Style              Style                `json:"style"`
	Twinned            *int                 `json:"twinned"`
	Facades            int                  `json:"facades"`
	Length             *float64             `json:"length"`
	Height             *float64             `json:"height"`
	URL                *string              `json:"url"`
	Availability       *catalog.EntryName   `json:"availability"`
	AvailableAt        any                  `json:"available_at"`
	DeliveredAt        *time.Time           `json:"delivered_at"`
	Activities         []*catalog.EntryName `json:"activities"`
	Orientations       []*catalog.EntryName `json:"orientations"`
	Services           []*catalog.EntryName `json:"services"`
	Proximities        []*catalog.EntryName `json:"proximities"`
	Tags               []*catalog.EntryName `json:"tags"`
	TagsCustomized     []any                `json:"tags_customized"`
	Pictures           []Picture            `json:"pictures"`
	Medias             []any                `json:"medias"`
	Documents          []any                `json:"documents"`
	Comments           []Comment            `json:"comments"`
	Areas              []Area               `json:"areas"`
	Regulations        []Regulation         `json:"regulations"`
	Financial          []any                `json:"financial"`
	Exchanges          []any                `json:"exchanges"`
	Options            []any                `json:"options"`
	FillingRate        any                  `json:"filling_rate"`
	PrivateComment     any                  `json:"private_comment"`
	InteragencyComment any                  `json:"interagency_comment"`
	StatusComment      any                  `json:"status_comment"`
	Logs               []any                `json:"logs"`
	Referrals          []any                `json:"referrals"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
	CreatedBy          int                  `json:"created_by"`
	UpdatedBy          int                  `json:"updated_by"`
}

type Agreement struct {
	Type      *catalog.EntryName `json:"type"`
	Reference string             `json:"reference"`
	StartAt   *time.Time         `json:"start_at"`
	EndAt     *time.Time         `json:"end_at"`
}

// Surface is the living area of a property.
type Surface struct {
	Unit     *catalog.EntryName `json:"unit"`
	Value    float64            `json:"value"`
	Total    float64            `json:"total"`
	Weighted float64            `json:"weighted"`
}

type Plot struct {
	NetFloor     float64            `json:"net_floor"`
	LandType     *catalog.EntryName `json:"land_type"`
	Width        float64            `json:"width"`
	Height       float64            `json:"height,omitempty"`
	ServicedPlot bool               `json:"serviced_plot"`
}

type Price struct {
	Value        float64            `json:"value"`
	Max          float64            `json:"max"`
	Fees         float64            `json:"fees"`
	Unit         any                `json:"unit"`
	Period       *catalog.EntryName `json:"period"`
	Hide         bool               `json:"hide"`
	Inventory    *float64           `json:"inventory"`
	Deposit      *float64           `json:"deposit"`
	Currency     string             `json:"currency"`
	Commission   *float64           `json:"commission"`
	TransferTax  any                `json:"transfer_tax"`
	Contribution any                `json:"contribution"`
	Pension      any                `json:"pension"`
	Tenant       *float64           `json:"tenant"`
	VAT          *bool              `json:"vat"`
}

type Residence struct {
	ID     int                `json:"id"`
	Type   *catalog.EntryName `json:"type"`
	Fees   float64            `json:"fees"`
	Period *catalog.EntryName `json:"period"`
	Lots   int                `json:"lots"`
}

type View struct {
	Type      *catalog.EntryName   `json:"type"`
	Landscape []*catalog.EntryName `json:"landscape"`
}

type Construction struct {
	Type             []*catalog.EntryName `json:"type,omitempty"`
	ConstructionYear int                  `json:"construction_year"`
	RenovationYear   int                  `json:"renovation_year"`
	RenovationCost   float64              `json:"renovation_cost"`
	ConstructionStep *catalog.EntryName   `json:"construction_step"`
}

type Floor struct {
	Type   *catalog.EntryName `json:"type"`
	Value  int                `json:"value"`
	Levels int                `json:"levels"`
	Floors int                `json:"floors"`
}

type Heating struct {
	Device  *catalog.EntryName   `json:"device"`
	Devices []*catalog.EntryName `json:"devices"`
	Access  *catalog.EntryName   `json:"access"`
	Type    *catalog.EntryName   `json:"type"`
	Types   []*catalog.EntryName `json:"types"`
}

type Water struct {
	HotDevice *catalog.EntryName `json:"hot_device"`
	HotAccess *catalog.EntryName `json:"hot_access"`
	Waste     *catalog.EntryName `json:"waste"`
}

type Style struct {
	Name *string `json:"name"`
}

type Comment struct {
	Language    string  `json:"language"`
	Title       *string `json:"title,omitempty"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Hook        any     `json:"hook,omitempty"`
	Comment     string  `json:"comment"`
	CommentFull *string `json:"comment_full,omitempty"`
}

type Picture struct {
	ID        int       `json:"id"`
	Rank      int       `json:"rank"`
	URL       string    `json:"url"`
	WidthMax  int       `json:"width_max"`
	HeightMax int       `json:"height_max"`
	Internet  bool      `json:"internet"`
	Print     bool      `json:"print"`
	Panorama  bool      `json:"panorama"`
	Child     int       `json:"child"`
	Reference any       `json:"reference"`
	Comments  []Comment `json:"comments"`
}

// Area is one room or outdoor space of a property.
type Area struct {
	Type          *catalog.EntryName   `json:"type"`
	Number        int                  `json:"number"`
	Area          float64              `json:"area"`
	Flooring      *catalog.EntryName   `json:"flooring"`
	CeilingHeight *float64             `json:"ceiling_height"`
	Floor         AreaFloor            `json:"floor"`
	Orientations  []*catalog.EntryName `json:"orientations"`
	Comments      []Comment            `json:"comments"`
	Lot           AreaLot              `json:"lot"`
}

type AreaFloor struct {
	Type  *catalog.EntryName `json:"type"`
	Value int                `json:"value"`
}

type AreaLot struct {
	Type any   `json:"type"`
	Rank any   `json:"rank"`
	Name []any `json:"name"`
}

// Regulation is an energy or legal rating. Value holds the comma separated grades
// as integers.
type Regulation struct {
	Type  *catalog.EntryName `json:"type"`
	Value []int              `json:"value"`
	Date  *time.Time         `json:"date"`
	Graph *string            `json:"graph"`
}

type Agency struct {
	ID           int        `json:"id"`
	Reference    int        `json:"reference"`
	Active       bool       `json:"active"`
	Name         string     `json:"name"`
	Company      NameIDPair `json:"company"`
	Brand        any        `json:"brand"`
	Networks     []any      `json:"networks"`
	Address      string     `json:"address"`
	AddressMore  *string    `json:"address_more"`
	City         City       `json:"city"`
	District     any        `json:"district"`
	Country      string     `json:"country"`
	Region       string     `json:"region"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Fax          *string    `json:"fax"`
	URL          string     `json:"url"`
	Logo         string     `json:"logo"`
	LogoSVG      *string    `json:"logo_svg"`
	Picture      string     `json:"picture"`
	Currency     string     `json:"currency"`
	Timetable    string     `json:"timetable"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Providers    string     `json:"providers"`
	Rates        []Rate     `json:"rates"`
	Partners     []Partner  `json:"partners"`
	Stories      []any      `json:"stories"`
	Users        []User     `json:"users"`
	Sectors      []any      `json:"sectors"`
	Parameters   string     `json:"parameters"`
	Subscription string     `json:"subscription"`
}

// Rate is an agency commission bracket for one property category.
type Rate struct {
	ID              int                `json:"id"`
	Category        *catalog.EntryName `json:"category"`
	RangeMin        *float64           `json:"range_min"`
	RangeMax        *float64           `json:"range_max"`
	CommissionPrice *float64           `json:"commission_price"`
	CommissionRate  *float64           `json:"commission_rate"`
	Comment         string             `json:"comment"`
	URL             *string            `json:"url"`
}

type Partner struct {
	Type      int     `json:"type"`
	Partner   *int    `json:"partner"`
	Name      *string `json:"name"`
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// AgenciesPage is one page of the agencies listing.
type AgenciesPage struct {
	TotalItems int      `json:"total_items"`
	Agencies   []Agency `json:"agencies"`
	Timestamp  int64    `json:"timestamp"`
}

// PropertiesPage is one page of an agency's properties. Timestamp is the server time
// of the response, usable as the lower bound of the next incremental sync.
type PropertiesPage struct {
	TotalItems int        `json:"total_items"`
	Timestamp  int64      `json:"timestamp"`
	Properties []Property `json:"properties"`
}
