package models

type Banner struct {
	BaseModel
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

type FAQ struct {
	BaseModel
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// About holds company profile content. One row by convention, maintained
// through an idempotent upsert.
type About struct {
	BaseModel
	Title       string `json:"title"`
	Description string `json:"description"`
	Vision      string `json:"vision"`
	Mission     string `json:"mission"`
	Image       string `json:"image"`
}

// Contact holds the company's contact channels. Single row by convention.
type Contact struct {
	BaseModel
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Whatsapp  string `json:"whatsapp"`
	Address   string `json:"address"`
	MapsURL   string `json:"maps_url"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Youtube   string `json:"youtube"`
	TikTok    string `json:"tiktok"`
}

// Marketplace holds links to the company's storefronts on third-party
// marketplaces. Single row by convention.
type Marketplace struct {
	BaseModel
	Tokopedia string `json:"tokopedia"`
	Shopee    string `json:"shopee"`
	Lazada    string `json:"lazada"`
	Blibli    string `json:"blibli"`
	TikTok    string `json:"tiktok"`
}

// SettingSite holds site-wide metadata. Single row by convention. The
// company name keeps its legacy wire name so existing admin clients keep
// working.
type SettingSite struct {
	BaseModel
	CompanyName string `json:"nama_company"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Favicon     string `json:"favicon"`
	Keywords    string `json:"keywords"`
}
