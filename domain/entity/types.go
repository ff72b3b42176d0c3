package entity

// Type discriminates the two kinds of business entities sharing the table.
type Type string

const (
	TypeStartup Type = "STARTUP"
	TypeEnabler Type = "ENABLER"
)

// IsValid reports whether t is one of the known entity types.
func (t Type) IsValid() bool {
	return t == TypeStartup || t == TypeEnabler
}

// TypeName returns the GraphQL type name for the entity type.
func (t Type) TypeName() string {
	if t == TypeStartup {
		return "Startup"
	}
	return "Enabler"
}

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `dynamodbav:"lat" json:"lat"`
	Lng float64 `dynamodbav:"lng" json:"lng"`
}

// Location is a street address with coordinates.
type Location struct {
	Address string `dynamodbav:"address" json:"address"`
	LatLng  LatLng `dynamodbav:"latlng" json:"latlng"`
}

// Contact is a single reachable channel (platform + handle/url).
type Contact struct {
	Platform string `dynamodbav:"platform" json:"platform"`
	Value    string `dynamodbav:"value" json:"value"`
}

// Milestone is one achievement on a startup timeline.
type Milestone struct {
	Title        string `dynamodbav:"title" json:"title"`
	DateAchieved string `dynamodbav:"dateAchieved" json:"dateAchieved"`
	Description  string `dynamodbav:"description,omitempty" json:"description,omitempty"`
}

// Founder describes one founding member of a startup.
type Founder struct {
	FounderID      string    `dynamodbav:"founderId" json:"founderId"`
	Name           string    `dynamodbav:"name" json:"name"`
	Role           string    `dynamodbav:"role,omitempty" json:"role,omitempty"`
	DateJoined     string    `dynamodbav:"dateJoined,omitempty" json:"dateJoined,omitempty"`
	Overview       string    `dynamodbav:"overview,omitempty" json:"overview,omitempty"`
	PhotoObjectKey string    `dynamodbav:"photoObjectkey,omitempty" json:"photoObjectkey,omitempty"`
	Contacts       []Contact `dynamodbav:"contacts,omitempty" json:"contacts,omitempty"`
}

// InvestmentCriterion is one named requirement an enabler applies to deals.
type InvestmentCriterion struct {
	CriteriaName string `dynamodbav:"criteriaName" json:"criteriaName"`
	Details      string `dynamodbav:"details,omitempty" json:"details,omitempty"`
}

// PortfolioItem records one startup an enabler has supported.
type PortfolioItem struct {
	SupportedStartupProject string `dynamodbav:"supportedStartupProject" json:"supportedStartupProject"`
	DateSupported           string `dynamodbav:"dateSupported,omitempty" json:"dateSupported,omitempty"`
	IsSupportingToPresent   *bool  `dynamodbav:"isSupportingToPresent,omitempty" json:"isSupportingToPresent,omitempty"`
	RoleAndImpact           string `dynamodbav:"roleAndImpact,omitempty" json:"roleAndImpact,omitempty"`
}

// NameChangeRequest is the assembled view of one request item. IsApproved is
// tri-state: nil while pending, then true or false exactly once.
type NameChangeRequest struct {
	RequestID    string `json:"requestId"`
	RequestType  string `json:"requestType,omitempty"`
	EntityID     string `json:"entityId"`
	EntityType   Type   `json:"entityType"`
	OriginalName string `json:"originalName"`
	NewName      string `json:"newName"`
	IsApproved   *bool  `json:"isApproved"`

	// Email is the entity's contact address, hydrated from the METADATA
	// item by reads that feed notification payloads.
	Email string `json:"email,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// Pending reports whether the request has not been responded to yet.
func (r *NameChangeRequest) Pending() bool {
	return r != nil && r.IsApproved == nil
}

// Status renders the tri-state approval as the GraphQL enum value.
func (r *NameChangeRequest) Status() string {
	switch {
	case r == nil || r.IsApproved == nil:
		return "PENDING"
	case *r.IsApproved:
		return "APPROVED"
	default:
		return "REJECTED"
	}
}

// SavedProfile is the assembled view of one saved profile marker. The
// existence of the underlying item is its only state.
type SavedProfile struct {
	OwnerType   Type   `json:"entityType"`
	OwnerID     string `json:"entityId"`
	ProfileType Type   `json:"savedProfileType"`
	ProfileID   string `json:"savedProfileId"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Entity is the logical business object reassembled from its page items.
// Fields outside the common block are populated only for the matching type.
type Entity struct {
	EntityType Type   `json:"entityType"`
	EntityID   string `json:"entityId"`

	// Common metadata fields.
	Email         string    `json:"email,omitempty"`
	LogoObjectKey string    `json:"logoObjectKey,omitempty"`
	DateFounded   string    `json:"dateFounded,omitempty"`
	Description   string    `json:"description,omitempty"`
	Location      *Location `json:"location,omitempty"`
	CreatedAt     string    `json:"createdAt,omitempty"`
	UpdatedAt     string    `json:"updatedAt,omitempty"`
	Visibility    bool      `json:"visibility"`
	Contacts      []Contact `json:"contacts"`

	// Startup fields.
	StartUpName  string      `json:"startUpName,omitempty"`
	StartupStage string      `json:"startupStage,omitempty"`
	RevenueModel []string    `json:"revenueModel,omitempty"`
	Industries   []string    `json:"industries"`
	Milestones   []Milestone `json:"milestones,omitempty"`
	Founders     []Founder   `json:"founders,omitempty"`

	// Enabler fields.
	EnablerName             string                `json:"enablerName,omitempty"`
	OrganizationType        []string              `json:"organizationType,omitempty"`
	IndustryFocus           []string              `json:"industryFocus,omitempty"`
	SupportType             []string              `json:"supportType,omitempty"`
	FundingStageFocus       []string              `json:"fundingStageFocus,omitempty"`
	InvestmentAmount        *float64              `json:"investmentAmount,omitempty"`
	StartupStagePreference  []string              `json:"startupStagePreference,omitempty"`
	PreferredBusinessModels []string              `json:"preferredBusinessModels,omitempty"`
	InvestmentCriteria      []InvestmentCriterion `json:"investmentCriteria,omitempty"`
	Portfolio               []PortfolioItem       `json:"portfolio,omitempty"`

	// Derived fields.
	ForSuggestionGeneration bool               `json:"forSuggestionGeneration,omitempty"`
	NameChangeRequestStatus *NameChangeRequest `json:"nameChangeRequestStatus,omitempty"`
	IsSaved                 bool               `json:"isSaved"`
}

// DisplayName returns the denormalized name field for the entity's type.
func (e *Entity) DisplayName() string {
	if e.EntityType == TypeStartup {
		return e.StartUpName
	}
	return e.EnablerName
}
