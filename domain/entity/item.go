package entity

// Item is one physical row of the single entity table. Every page, request,
// and saved profile marker is stored in this shape; which attributes are set
// depends on the sort key. Attribute names match the table schema, so the
// struct doubles as the attributevalue marshaling target.
type Item struct {
	HashKey  string `dynamodbav:"hashKey" json:"hashKey"`
	RangeKey string `dynamodbav:"rangeKey" json:"rangeKey"`

	// Secondary index projection keys. Opaque time-sortable tokens whose
	// only purpose is making rows enumerable through GSI1/GSI2 scans.
	GSI1PK string `dynamodbav:"GSI1PK,omitempty" json:"-"`
	GSI2PK string `dynamodbav:"GSI2PK,omitempty" json:"-"`

	// Common metadata attributes.
	Email         string    `dynamodbav:"email,omitempty" json:"email,omitempty"`
	LogoObjectKey string    `dynamodbav:"logoObjectKey,omitempty" json:"logoObjectKey,omitempty"`
	DateFounded   string    `dynamodbav:"dateFounded,omitempty" json:"dateFounded,omitempty"`
	Description   string    `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Location      *Location `dynamodbav:"location,omitempty" json:"location,omitempty"`
	CreatedAt     string    `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     string    `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	Visibility    *bool     `dynamodbav:"visibility,omitempty" json:"visibility,omitempty"`
	Contacts      []Contact `dynamodbav:"contacts,omitempty" json:"contacts,omitempty"`

	// Startup attributes.
	StartupID    string      `dynamodbav:"startupId,omitempty" json:"startupId,omitempty"`
	StartUpName  string      `dynamodbav:"startUpName,omitempty" json:"startUpName,omitempty"`
	StartupStage string      `dynamodbav:"startupStage,omitempty" json:"startupStage,omitempty"`
	RevenueModel []string    `dynamodbav:"revenueModel,omitempty" json:"revenueModel,omitempty"`
	Industries   []string    `dynamodbav:"industries,omitempty" json:"industries,omitempty"`
	Milestones   []Milestone `dynamodbav:"milestones,omitempty" json:"milestones,omitempty"`
	Founders     []Founder   `dynamodbav:"founders,omitempty" json:"founders,omitempty"`

	// Enabler attributes.
	EnablerID               string                `dynamodbav:"enablerId,omitempty" json:"enablerId,omitempty"`
	EnablerName             string                `dynamodbav:"enablerName,omitempty" json:"enablerName,omitempty"`
	OrganizationType        []string              `dynamodbav:"organizationType,omitempty" json:"organizationType,omitempty"`
	IndustryFocus           []string              `dynamodbav:"industryFocus,omitempty" json:"industryFocus,omitempty"`
	SupportType             []string              `dynamodbav:"supportType,omitempty" json:"supportType,omitempty"`
	FundingStageFocus       []string              `dynamodbav:"fundingStageFocus,omitempty" json:"fundingStageFocus,omitempty"`
	InvestmentAmount        *float64              `dynamodbav:"investmentAmount,omitempty" json:"investmentAmount,omitempty"`
	StartupStagePreference  []string              `dynamodbav:"startupStagePreference,omitempty" json:"startupStagePreference,omitempty"`
	PreferredBusinessModels []string              `dynamodbav:"preferredBusinessModels,omitempty" json:"preferredBusinessModels,omitempty"`
	InvestmentCriteria      []InvestmentCriterion `dynamodbav:"investmentCriteria,omitempty" json:"investmentCriteria,omitempty"`
	Portfolio               []PortfolioItem       `dynamodbav:"portfolio,omitempty" json:"portfolio,omitempty"`

	// Name change request attributes. IsApproved stays absent (nil) while
	// the request is pending.
	RequestID    string `dynamodbav:"requestId,omitempty" json:"requestId,omitempty"`
	RequestType  string `dynamodbav:"requestType,omitempty" json:"requestType,omitempty"`
	EntityID     string `dynamodbav:"entityId,omitempty" json:"entityId,omitempty"`
	EntityType   string `dynamodbav:"entityType,omitempty" json:"entityType,omitempty"`
	OriginalName string `dynamodbav:"originalName,omitempty" json:"originalName,omitempty"`
	NewName      string `dynamodbav:"newName,omitempty" json:"newName,omitempty"`
	IsApproved   *bool  `dynamodbav:"isApproved,omitempty" json:"isApproved,omitempty"`

	// Saved profile marker attributes.
	SavedProfileID   string `dynamodbav:"savedProfileId,omitempty" json:"savedProfileId,omitempty"`
	SavedProfileType string `dynamodbav:"savedProfileType,omitempty" json:"savedProfileType,omitempty"`

	// Signal for the downstream suggestion generator; set on metadata
	// updates, reset by the generator after consumption.
	ForSuggestionGeneration *bool `dynamodbav:"forSuggestionGeneration,omitempty" json:"forSuggestionGeneration,omitempty"`
}

// Key identifies one item.
type Key struct {
	HashKey  string `dynamodbav:"hashKey"`
	RangeKey string `dynamodbav:"rangeKey"`
}

// Key returns the item's composite key.
func (it *Item) Key() Key {
	return Key{HashKey: it.HashKey, RangeKey: it.RangeKey}
}

// RequestItem converts a raw request row into its assembled view. The
// caller is responsible for checking IsRequestRangeKey first.
func (it *Item) RequestItem(entityType Type, entityID string) *NameChangeRequest {
	return &NameChangeRequest{
		RequestID:    it.RequestID,
		RequestType:  it.RequestType,
		EntityID:     entityID,
		EntityType:   entityType,
		OriginalName: it.OriginalName,
		NewName:      it.NewName,
		IsApproved:   it.IsApproved,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
