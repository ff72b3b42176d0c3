package entity

import (
	"strings"

	"elevate-backend/pkg/errors"
)

// IDSource produces entity identifiers and the opaque time-sortable tokens
// written to the secondary index projection keys.
type IDSource interface {
	NewID() string
	NewToken() string
}

// Clock produces ISO-8601 timestamps.
type Clock interface {
	NowISO8601() string
}

// OpKind discriminates write operations in a WriteSet.
type OpKind int

const (
	OpPut OpKind = iota
	OpUpdate
	OpDelete
)

// Attr is one attribute assignment of a partial update.
type Attr struct {
	Name  string
	Value interface{}
}

// WriteOp is one planned store write. Put carries a full item; Update
// carries an ordered attribute set; Delete carries only the key.
type WriteOp struct {
	Kind OpKind
	Key  Key
	Item *Item
	Set  []Attr

	// RequireExists guards the op with an item-exists precondition, turning
	// creation races into conditional failures instead of phantom rows.
	RequireExists bool

	// RequireAbsent guards the op with an attribute-not-exists precondition
	// on the named attribute. Keeps terminal transitions terminal.
	RequireAbsent string
}

// WriteSet is the ordered set of writes needed to keep an entity's pages
// consistent. Atomic sets must be applied all-or-nothing; partial
// application must never be observable.
type WriteSet struct {
	Ops    []WriteOp
	Atomic bool
}

// Input carries create/update fields for either entity type. Pointer scalars
// and nil slices mean "not supplied"; updates only touch supplied fields.
type Input struct {
	DisplayName   *string   `json:"displayName,omitempty"`
	Email         *string   `json:"email,omitempty" validate:"omitempty,email"`
	LogoObjectKey *string   `json:"logoObjectKey,omitempty"`
	DateFounded   *string   `json:"dateFounded,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Location      *Location `json:"location,omitempty"`

	// Startup fields.
	StartupStage *string     `json:"startupStage,omitempty"`
	RevenueModel []string    `json:"revenueModel,omitempty"`
	Industries   []string    `json:"industries,omitempty"`
	Contacts     []Contact   `json:"contacts,omitempty"`
	Founders     []Founder   `json:"founders,omitempty"`
	Milestones   []Milestone `json:"milestones,omitempty"`

	// Enabler fields.
	OrganizationType        []string              `json:"organizationType,omitempty"`
	IndustryFocus           []string              `json:"industryFocus,omitempty"`
	SupportType             []string              `json:"supportType,omitempty"`
	FundingStageFocus       []string              `json:"fundingStageFocus,omitempty"`
	InvestmentAmount        *float64              `json:"investmentAmount,omitempty"`
	StartupStagePreference  []string              `json:"startupStagePreference,omitempty"`
	PreferredBusinessModels []string              `json:"preferredBusinessModels,omitempty"`
	InvestmentCriteria      []InvestmentCriterion `json:"investmentCriteria,omitempty"`
	Portfolio               []PortfolioItem       `json:"portfolio,omitempty"`
}

// fieldSpec describes one METADATA attribute that updates may touch.
type fieldSpec struct {
	name    string
	present func(*Input) bool
	value   func(*Input) interface{}
	apply   func(*Item, *Input)
}

// pageSpec describes one optional page and how input maps onto it.
type pageSpec struct {
	page    Page
	name    string
	present func(*Input) bool
	apply   func(*Item, *Input)
	attr    func(*Input) Attr
}

func strField(name string, get func(*Input) *string, set func(*Item, string)) fieldSpec {
	return fieldSpec{
		name:    name,
		present: func(in *Input) bool { return get(in) != nil },
		value:   func(in *Input) interface{} { return *get(in) },
		apply: func(it *Item, in *Input) {
			if v := get(in); v != nil {
				set(it, *v)
			}
		},
	}
}

func listField(name string, get func(*Input) []string, set func(*Item, []string)) fieldSpec {
	return fieldSpec{
		name:    name,
		present: func(in *Input) bool { return get(in) != nil },
		value:   func(in *Input) interface{} { return get(in) },
		apply: func(it *Item, in *Input) {
			if v := get(in); v != nil {
				set(it, v)
			}
		},
	}
}

var commonMetadataFields = []fieldSpec{
	strField("email", func(in *Input) *string { return in.Email }, func(it *Item, v string) { it.Email = v }),
	strField("logoObjectKey", func(in *Input) *string { return in.LogoObjectKey }, func(it *Item, v string) { it.LogoObjectKey = v }),
	strField("dateFounded", func(in *Input) *string { return in.DateFounded }, func(it *Item, v string) { it.DateFounded = v }),
	strField("description", func(in *Input) *string { return in.Description }, func(it *Item, v string) { it.Description = v }),
	{
		name:    "location",
		present: func(in *Input) bool { return in.Location != nil },
		value:   func(in *Input) interface{} { return in.Location },
		apply:   func(it *Item, in *Input) { it.Location = in.Location },
	},
}

var startupMetadataFields = append(commonMetadataFields[:len(commonMetadataFields):len(commonMetadataFields)],
	strField("startupStage", func(in *Input) *string { return in.StartupStage }, func(it *Item, v string) { it.StartupStage = v }),
	listField("revenueModel", func(in *Input) []string { return in.RevenueModel }, func(it *Item, v []string) { it.RevenueModel = v }),
	listField("industries", func(in *Input) []string { return in.Industries }, func(it *Item, v []string) { it.Industries = v }),
)

var enablerMetadataFields = append(commonMetadataFields[:len(commonMetadataFields):len(commonMetadataFields)],
	listField("organizationType", func(in *Input) []string { return in.OrganizationType }, func(it *Item, v []string) { it.OrganizationType = v }),
	listField("industryFocus", func(in *Input) []string { return in.IndustryFocus }, func(it *Item, v []string) { it.IndustryFocus = v }),
	listField("supportType", func(in *Input) []string { return in.SupportType }, func(it *Item, v []string) { it.SupportType = v }),
	listField("fundingStageFocus", func(in *Input) []string { return in.FundingStageFocus }, func(it *Item, v []string) { it.FundingStageFocus = v }),
	fieldSpec{
		name:    "investmentAmount",
		present: func(in *Input) bool { return in.InvestmentAmount != nil },
		value:   func(in *Input) interface{} { return *in.InvestmentAmount },
		apply: func(it *Item, in *Input) {
			if in.InvestmentAmount != nil {
				it.InvestmentAmount = in.InvestmentAmount
			}
		},
	},
	listField("startupStagePreference", func(in *Input) []string { return in.StartupStagePreference }, func(it *Item, v []string) { it.StartupStagePreference = v }),
	listField("preferredBusinessModels", func(in *Input) []string { return in.PreferredBusinessModels }, func(it *Item, v []string) { it.PreferredBusinessModels = v }),
)

var metadataFieldsByType = map[Type][]fieldSpec{
	TypeStartup: startupMetadataFields,
	TypeEnabler: enablerMetadataFields,
}

var pagesByType = map[Type][]pageSpec{
	TypeStartup: {
		{
			page: PageContacts, name: "contacts",
			present: func(in *Input) bool { return len(in.Contacts) > 0 },
			apply:   func(it *Item, in *Input) { it.Contacts = in.Contacts },
			attr:    func(in *Input) Attr { return Attr{"contacts", in.Contacts} },
		},
		{
			page: PageFounders, name: "founders",
			present: func(in *Input) bool { return len(in.Founders) > 0 },
			apply:   func(it *Item, in *Input) { it.Founders = in.Founders },
			attr:    func(in *Input) Attr { return Attr{"founders", in.Founders} },
		},
		{
			page: PageMilestones, name: "milestones",
			present: func(in *Input) bool { return len(in.Milestones) > 0 },
			apply:   func(it *Item, in *Input) { it.Milestones = in.Milestones },
			attr:    func(in *Input) Attr { return Attr{"milestones", in.Milestones} },
		},
	},
	TypeEnabler: {
		{
			page: PageContacts, name: "contacts",
			present: func(in *Input) bool { return len(in.Contacts) > 0 },
			apply:   func(it *Item, in *Input) { it.Contacts = in.Contacts },
			attr:    func(in *Input) Attr { return Attr{"contacts", in.Contacts} },
		},
		{
			page: PageInvestmentCriteria, name: "investmentCriteria",
			present: func(in *Input) bool { return len(in.InvestmentCriteria) > 0 },
			apply:   func(it *Item, in *Input) { it.InvestmentCriteria = in.InvestmentCriteria },
			attr:    func(in *Input) Attr { return Attr{"investmentCriteria", in.InvestmentCriteria} },
		},
		{
			page: PagePortfolio, name: "portfolio",
			present: func(in *Input) bool { return len(in.Portfolio) > 0 },
			apply:   func(it *Item, in *Input) { it.Portfolio = in.Portfolio },
			attr:    func(in *Input) Attr { return Attr{"portfolio", in.Portfolio} },
		},
	},
}

// suggestionRelevantFields lists the input fields whose change signals the
// downstream suggestion generator that its recommendations are stale.
var suggestionRelevantFields = map[Type][]string{
	TypeStartup: {"description", "startupStage", "revenueModel", "location", "industries", "founders", "milestones"},
	TypeEnabler: {"description", "industryFocus", "supportType", "fundingStageFocus", "investmentAmount",
		"startupStagePreference", "preferredBusinessModels", "investmentCriteria", "portfolio"},
}

// Planner turns create/update requests into write sets. It performs no I/O;
// identifiers and timestamps come from the injected sources so plans are
// deterministic under test.
type Planner struct {
	ids   IDSource
	clock Clock
}

// NewPlanner creates a Planner.
func NewPlanner(ids IDSource, clock Clock) *Planner {
	return &Planner{ids: ids, clock: clock}
}

// PlanCreate builds the atomic write set for a new entity: a METADATA item
// always, plus one item per optional page supplied non-empty. All items
// share the generated id, the creation timestamp, and the index token.
func (p *Planner) PlanCreate(entityType Type, in *Input) (string, WriteSet, error) {
	if !entityType.IsValid() {
		return "", WriteSet{}, errors.NewValidationError("unknown entity type: " + string(entityType))
	}
	if in.DisplayName == nil || strings.TrimSpace(*in.DisplayName) == "" {
		return "", WriteSet{}, errors.NewValidationError("display name is required")
	}

	entityID := p.ids.NewID()
	createdAt := p.clock.NowISO8601()
	token := p.ids.NewToken()
	hashKey := HashKey(entityType, entityID)

	meta := &Item{
		HashKey:   hashKey,
		RangeKey:  PageRangeKey(entityType, PageMetadata),
		GSI1PK:    token,
		CreatedAt: createdAt,
	}
	p.stampIdentity(meta, entityType, entityID)
	if entityType == TypeStartup {
		meta.StartUpName = *in.DisplayName
	} else {
		meta.EnablerName = *in.DisplayName
	}
	for _, f := range metadataFieldsByType[entityType] {
		f.apply(meta, in)
	}

	ops := []WriteOp{{Kind: OpPut, Key: meta.Key(), Item: meta}}

	for _, ps := range pagesByType[entityType] {
		if !ps.present(in) {
			continue
		}
		it := &Item{
			HashKey:   hashKey,
			RangeKey:  PageRangeKey(entityType, ps.page),
			GSI1PK:    token,
			CreatedAt: createdAt,
		}
		p.stampIdentity(it, entityType, entityID)
		ps.apply(it, in)
		ops = append(ops, WriteOp{Kind: OpPut, Key: it.Key(), Item: it})
	}

	return entityID, WriteSet{Ops: ops, Atomic: true}, nil
}

// PlanUpdate builds the atomic write set for a partial entity update. The
// METADATA op only touches supplied attributes plus the derived
// forSuggestionGeneration flag; each supplied page is replaced whole. Every
// op carries an exists precondition so updating a missing entity fails as a
// unit.
func (p *Planner) PlanUpdate(entityType Type, entityID string, in *Input) (WriteSet, error) {
	if !entityType.IsValid() {
		return WriteSet{}, errors.NewValidationError("unknown entity type: " + string(entityType))
	}
	if entityID == "" {
		return WriteSet{}, errors.NewValidationError("entity id is required")
	}

	hashKey := HashKey(entityType, entityID)
	now := p.clock.NowISO8601()

	set := []Attr{{"forSuggestionGeneration", p.suggestionRelevantChanged(entityType, in)}}
	for _, f := range metadataFieldsByType[entityType] {
		if f.present(in) {
			set = append(set, Attr{f.name, f.value(in)})
		}
	}
	set = append(set, Attr{"updatedAt", now})

	ops := []WriteOp{{
		Kind:          OpUpdate,
		Key:           Key{HashKey: hashKey, RangeKey: PageRangeKey(entityType, PageMetadata)},
		Set:           set,
		RequireExists: true,
	}}

	for _, ps := range pagesByType[entityType] {
		if !ps.present(in) {
			continue
		}
		ops = append(ops, WriteOp{
			Kind:          OpUpdate,
			Key:           Key{HashKey: hashKey, RangeKey: PageRangeKey(entityType, ps.page)},
			Set:           []Attr{ps.attr(in), {"updatedAt", now}},
			RequireExists: true,
		})
	}

	return WriteSet{Ops: ops, Atomic: true}, nil
}

func (p *Planner) suggestionRelevantChanged(entityType Type, in *Input) bool {
	present := map[string]bool{}
	for _, f := range metadataFieldsByType[entityType] {
		present[f.name] = f.present(in)
	}
	for _, ps := range pagesByType[entityType] {
		present[ps.name] = ps.present(in)
	}
	for _, name := range suggestionRelevantFields[entityType] {
		if present[name] {
			return true
		}
	}
	return false
}

// PlanNameChangeRequest builds the single put creating a pending request.
// isApproved stays absent: null is the pending state every read path keys
// on.
func (p *Planner) PlanNameChangeRequest(entityType Type, entityID, newName, originalName string) (string, WriteSet, error) {
	if !entityType.IsValid() {
		return "", WriteSet{}, errors.NewValidationError("unknown entity type: " + string(entityType))
	}
	if strings.TrimSpace(newName) == "" {
		return "", WriteSet{}, errors.NewValidationError("new name is required")
	}

	requestID := p.ids.NewID()
	now := p.clock.NowISO8601()
	token := p.ids.NewToken()

	it := &Item{
		HashKey:      HashKey(entityType, entityID),
		RangeKey:     RequestRangeKey(requestID),
		GSI1PK:       token,
		GSI2PK:       token,
		RequestID:    requestID,
		RequestType:  "NAME_CHANGE",
		EntityID:     entityID,
		EntityType:   string(entityType),
		NewName:      newName,
		OriginalName: originalName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return requestID, WriteSet{Ops: []WriteOp{{Kind: OpPut, Key: it.Key(), Item: it}}}, nil
}

// PlanNameChangeResponse builds the terminal transition of a request. A
// rejection touches only the request item; an approval additionally rewrites
// the entity's display name, and the two updates travel in one atomic set so
// a reader can never see an approved request without the rename applied. The
// verdict op requires isApproved to still be absent, so responding to a
// settled request fails as a conditional write instead of flipping it.
func (p *Planner) PlanNameChangeResponse(entityType Type, entityID, requestID string, approved bool, newName string) (WriteSet, error) {
	if !entityType.IsValid() {
		return WriteSet{}, errors.NewValidationError("unknown entity type: " + string(entityType))
	}
	if requestID == "" {
		return WriteSet{}, errors.NewValidationError("request id is required")
	}
	if approved && strings.TrimSpace(newName) == "" {
		return WriteSet{}, errors.NewValidationError("approved request has no new name")
	}

	hashKey := HashKey(entityType, entityID)
	now := p.clock.NowISO8601()

	ops := []WriteOp{{
		Kind: OpUpdate,
		Key:  Key{HashKey: hashKey, RangeKey: RequestRangeKey(requestID)},
		Set: []Attr{
			{"isApproved", approved},
			{"updatedAt", now},
		},
		RequireExists: true,
		RequireAbsent: "isApproved",
	}}

	if approved {
		nameField := "enablerName"
		if entityType == TypeStartup {
			nameField = "startUpName"
		}
		ops = append(ops, WriteOp{
			Kind: OpUpdate,
			Key:  Key{HashKey: hashKey, RangeKey: PageRangeKey(entityType, PageMetadata)},
			Set: []Attr{
				{nameField, newName},
				{"updatedAt", now},
			},
			RequireExists: true,
		})
	}

	return WriteSet{Ops: ops, Atomic: true}, nil
}

// PlanSaveProfile builds the put for a bookmark marker. Overwriting an
// existing marker is a no-op by design.
func (p *Planner) PlanSaveProfile(ownerType Type, ownerID string, profileType Type, profileID string) (WriteSet, error) {
	if !ownerType.IsValid() || !profileType.IsValid() {
		return WriteSet{}, errors.NewValidationError("unknown entity type")
	}
	if ownerID == "" || profileID == "" {
		return WriteSet{}, errors.NewValidationError("entity id and profile id are required")
	}

	now := p.clock.NowISO8601()
	it := &Item{
		HashKey:          HashKey(ownerType, ownerID),
		RangeKey:         SavedProfileRangeKey(ownerType, profileType, profileID),
		GSI1PK:           p.ids.NewToken(),
		EntityType:       string(ownerType),
		SavedProfileID:   profileID,
		SavedProfileType: string(profileType),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	p.stampIdentity(it, ownerType, ownerID)

	return WriteSet{Ops: []WriteOp{{Kind: OpPut, Key: it.Key(), Item: it}}}, nil
}

// PlanUnsaveProfile builds the delete removing a bookmark marker.
func (p *Planner) PlanUnsaveProfile(ownerType Type, ownerID string, profileType Type, profileID string) (WriteSet, error) {
	if !ownerType.IsValid() || !profileType.IsValid() {
		return WriteSet{}, errors.NewValidationError("unknown entity type")
	}
	return WriteSet{Ops: []WriteOp{{
		Kind: OpDelete,
		Key: Key{
			HashKey:  HashKey(ownerType, ownerID),
			RangeKey: SavedProfileRangeKey(ownerType, profileType, profileID),
		},
	}}}, nil
}

// PlanSuggestionFlagReset builds the updates clearing (or raising) the
// forSuggestionGeneration flag on the METADATA items of the given entities.
// Used by the suggestion generator after it consumed a batch.
func (p *Planner) PlanSuggestionFlagReset(keys []Key, value bool) WriteSet {
	now := p.clock.NowISO8601()
	ops := make([]WriteOp, 0, len(keys))
	for _, key := range keys {
		ops = append(ops, WriteOp{
			Kind: OpUpdate,
			Key:  key,
			Set: []Attr{
				{"forSuggestionGeneration", value},
				{"updatedAt", now},
			},
			RequireExists: true,
		})
	}
	return WriteSet{Ops: ops}
}

// stampIdentity sets the denormalized id attributes every item carries.
func (p *Planner) stampIdentity(it *Item, entityType Type, entityID string) {
	if entityType == TypeStartup {
		it.StartupID = entityID
	} else {
		it.EnablerID = entityID
	}
}
