package entity

import (
	"elevate-backend/pkg/errors"
)

// mergeFunc folds one page item into the entity under assembly.
type mergeFunc func(*Entity, *Item)

// pageMerges maps (entity type, page) to the merge that copies the page's
// attribute bag onto the assembled entity. Dispatching through this table
// keeps assembly order-independent: no merge reads a field another page
// wrote.
var pageMerges = map[Type]map[Page]mergeFunc{
	TypeStartup: {
		PageMetadata:   mergeStartupMetadata,
		PageContacts:   func(e *Entity, it *Item) { e.Contacts = it.Contacts },
		PageFounders:   func(e *Entity, it *Item) { e.Founders = it.Founders },
		PageMilestones: func(e *Entity, it *Item) { e.Milestones = it.Milestones },
	},
	TypeEnabler: {
		PageMetadata:           mergeEnablerMetadata,
		PageContacts:           func(e *Entity, it *Item) { e.Contacts = it.Contacts },
		PageInvestmentCriteria: func(e *Entity, it *Item) { e.InvestmentCriteria = it.InvestmentCriteria },
		PagePortfolio:          func(e *Entity, it *Item) { e.Portfolio = it.Portfolio },
	},
}

func mergeStartupMetadata(e *Entity, it *Item) {
	e.StartUpName = it.StartUpName
	e.Email = it.Email
	e.LogoObjectKey = it.LogoObjectKey
	e.DateFounded = it.DateFounded
	e.StartupStage = it.StartupStage
	e.Description = it.Description
	e.Location = it.Location
	e.RevenueModel = it.RevenueModel
	e.Industries = it.Industries
	mergeCommonMetadata(e, it)
}

func mergeEnablerMetadata(e *Entity, it *Item) {
	e.EnablerName = it.EnablerName
	e.Email = it.Email
	e.LogoObjectKey = it.LogoObjectKey
	e.DateFounded = it.DateFounded
	e.Description = it.Description
	e.Location = it.Location
	e.OrganizationType = it.OrganizationType
	e.IndustryFocus = it.IndustryFocus
	e.SupportType = it.SupportType
	e.FundingStageFocus = it.FundingStageFocus
	e.InvestmentAmount = it.InvestmentAmount
	e.StartupStagePreference = it.StartupStagePreference
	e.PreferredBusinessModels = it.PreferredBusinessModels
	mergeCommonMetadata(e, it)
}

// mergeCommonMetadata applies the fields only the METADATA page carries.
func mergeCommonMetadata(e *Entity, it *Item) {
	e.CreatedAt = it.CreatedAt
	e.UpdatedAt = it.UpdatedAt
	if it.Visibility != nil {
		e.Visibility = *it.Visibility
	}
	if it.ForSuggestionGeneration != nil {
		e.ForSuggestionGeneration = *it.ForSuggestionGeneration
	}
}

// Assemble merges the items sharing one partition key into a single logical
// entity. Items may arrive in any order; pages do not depend on each other.
// Request items with a pending approval surface as NameChangeRequestStatus
// (when several are pending, which nothing upstream prevents, the last one
// encountered wins). Saved profile markers are ignored here.
//
// An empty item set means the caller looked up an entity that does not
// exist; list paths never call Assemble with an empty group.
func Assemble(entityType Type, entityID string, items []Item) (*Entity, error) {
	if len(items) == 0 {
		return nil, errors.NewNotFoundError(string(entityType))
	}

	e := &Entity{
		EntityType: entityType,
		EntityID:   entityID,
		Visibility: true,
	}

	merges := pageMerges[entityType]
	pagePrefix := TypeRangeKeyPrefix(entityType)

	for i := range items {
		it := &items[i]
		switch {
		case IsRequestRangeKey(it.RangeKey):
			if it.IsApproved == nil {
				e.NameChangeRequestStatus = it.RequestItem(entityType, entityID)
			}
		case IsSavedProfileRangeKey(it.RangeKey):
			// Bookmark markers are not part of the entity view.
		case len(it.RangeKey) > len(pagePrefix) && it.RangeKey[:len(pagePrefix)] == pagePrefix:
			if merge, ok := merges[Page(it.RangeKey[len(pagePrefix):])]; ok {
				merge(e, it)
			}
		}
	}

	applyDefaults(e)
	return e, nil
}

// applyDefaults backfills metadata-level defaults so readers never see
// absent collections or a null visibility.
func applyDefaults(e *Entity) {
	if e.UpdatedAt == "" {
		e.UpdatedAt = e.CreatedAt
	}
	if e.Contacts == nil {
		e.Contacts = []Contact{}
	}
	if e.Industries == nil {
		e.Industries = []string{}
	}
	switch e.EntityType {
	case TypeStartup:
		if e.Founders == nil {
			e.Founders = []Founder{}
		}
		if e.Milestones == nil {
			e.Milestones = []Milestone{}
		}
		if e.RevenueModel == nil {
			e.RevenueModel = []string{}
		}
	case TypeEnabler:
		if e.InvestmentCriteria == nil {
			e.InvestmentCriteria = []InvestmentCriterion{}
		}
		if e.Portfolio == nil {
			e.Portfolio = []PortfolioItem{}
		}
	}
}
