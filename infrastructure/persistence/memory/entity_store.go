// Package memory provides an in-memory EntityStore used by local runs and
// handler tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"elevate-backend/application/ports"
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
)

// EntityStore is an in-memory implementation of ports.EntityStore. Write
// sets are validated before any op applies, so atomic sets behave
// all-or-nothing the way the table transaction would.
type EntityStore struct {
	mu    sync.RWMutex
	items map[entity.Key]entity.Item
	order []entity.Key

	// FailWrites, when set, makes every Write fail without applying
	// anything. Test hook for transaction rollback paths.
	FailWrites error
}

// NewEntityStore creates an empty store.
func NewEntityStore() *EntityStore {
	return &EntityStore{items: make(map[entity.Key]entity.Item)}
}

// Get retrieves one item, or NOT_FOUND.
func (s *EntityStore) Get(ctx context.Context, key entity.Key) (*entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[key]
	if !ok {
		return nil, errors.NewNotFoundError("item")
	}
	return &it, nil
}

// Query returns the items of one partition, optionally narrowed by a sort
// key prefix, in insertion order.
func (s *EntityStore) Query(ctx context.Context, hashKey, rangeKeyPrefix string) ([]entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Item
	for _, key := range s.order {
		if key.HashKey != hashKey {
			continue
		}
		if rangeKeyPrefix != "" && !strings.HasPrefix(key.RangeKey, rangeKeyPrefix) {
			continue
		}
		out = append(out, s.items[key])
	}
	return out, nil
}

// Scan returns every item matching the options, in insertion order.
func (s *EntityStore) Scan(ctx context.Context, opts ports.ScanOptions) ([]entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Item
	for _, key := range s.order {
		it := s.items[key]
		if opts.RangeKeyPrefix != "" && !strings.HasPrefix(it.RangeKey, opts.RangeKeyPrefix) {
			continue
		}
		if opts.RangeKeyContains != "" && !strings.Contains(it.RangeKey, opts.RangeKeyContains) {
			continue
		}
		if opts.IsApproved != nil && (it.IsApproved == nil || *it.IsApproved != *opts.IsApproved) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// BatchGet returns the existing items among the requested keys; absent keys
// are skipped, matching the table's batch-get semantics.
func (s *EntityStore) BatchGet(ctx context.Context, keys []entity.Key) ([]entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Item, 0, len(keys))
	for _, key := range keys {
		if it, ok := s.items[key]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

// Write applies a planned write set. Preconditions are checked for the whole
// set before anything mutates.
func (s *EntityStore) Write(ctx context.Context, set entity.WriteSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites != nil {
		return s.FailWrites
	}

	for _, op := range set.Ops {
		if op.RequireExists {
			if _, ok := s.items[op.Key]; !ok {
				return errors.NewConditionalWriteError("item does not exist: "+op.Key.RangeKey, nil)
			}
		}
		if op.RequireAbsent != "" {
			if it, ok := s.items[op.Key]; ok && attrPresent(&it, op.RequireAbsent) {
				return errors.NewConditionalWriteError("attribute already set: "+op.RequireAbsent, nil)
			}
		}
	}

	for _, op := range set.Ops {
		switch op.Kind {
		case entity.OpPut:
			s.put(op.Key, *op.Item)
		case entity.OpDelete:
			delete(s.items, op.Key)
		case entity.OpUpdate:
			it := s.items[op.Key]
			it.HashKey = op.Key.HashKey
			it.RangeKey = op.Key.RangeKey
			for _, attr := range op.Set {
				applyAttr(&it, attr)
			}
			s.put(op.Key, it)
		}
	}
	return nil
}

func (s *EntityStore) put(key entity.Key, it entity.Item) {
	if _, ok := s.items[key]; !ok {
		s.order = append(s.order, key)
	}
	s.items[key] = it
}

// Seed inserts items directly, for tests.
func (s *EntityStore) Seed(items ...entity.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		s.put(it.Key(), it)
	}
}

// attrPresent reports whether the named attribute is set on the item. Only
// attributes that appear as write guards need to be known here.
func attrPresent(it *entity.Item, name string) bool {
	switch name {
	case "isApproved":
		return it.IsApproved != nil
	case "visibility":
		return it.Visibility != nil
	case "forSuggestionGeneration":
		return it.ForSuggestionGeneration != nil
	}
	return false
}

// applyAttr mirrors a SET expression onto the typed item. Attribute names
// match the table schema.
func applyAttr(it *entity.Item, attr entity.Attr) {
	switch attr.Name {
	case "email":
		it.Email = attr.Value.(string)
	case "logoObjectKey":
		it.LogoObjectKey = attr.Value.(string)
	case "dateFounded":
		it.DateFounded = attr.Value.(string)
	case "description":
		it.Description = attr.Value.(string)
	case "location":
		it.Location = attr.Value.(*entity.Location)
	case "updatedAt":
		it.UpdatedAt = attr.Value.(string)
	case "startUpName":
		it.StartUpName = attr.Value.(string)
	case "enablerName":
		it.EnablerName = attr.Value.(string)
	case "startupStage":
		it.StartupStage = attr.Value.(string)
	case "revenueModel":
		it.RevenueModel = attr.Value.([]string)
	case "industries":
		it.Industries = attr.Value.([]string)
	case "contacts":
		it.Contacts = attr.Value.([]entity.Contact)
	case "founders":
		it.Founders = attr.Value.([]entity.Founder)
	case "milestones":
		it.Milestones = attr.Value.([]entity.Milestone)
	case "organizationType":
		it.OrganizationType = attr.Value.([]string)
	case "industryFocus":
		it.IndustryFocus = attr.Value.([]string)
	case "supportType":
		it.SupportType = attr.Value.([]string)
	case "fundingStageFocus":
		it.FundingStageFocus = attr.Value.([]string)
	case "investmentAmount":
		v := attr.Value.(float64)
		it.InvestmentAmount = &v
	case "startupStagePreference":
		it.StartupStagePreference = attr.Value.([]string)
	case "preferredBusinessModels":
		it.PreferredBusinessModels = attr.Value.([]string)
	case "investmentCriteria":
		it.InvestmentCriteria = attr.Value.([]entity.InvestmentCriterion)
	case "portfolio":
		it.Portfolio = attr.Value.([]entity.PortfolioItem)
	case "isApproved":
		v := attr.Value.(bool)
		it.IsApproved = &v
	case "visibility":
		v := attr.Value.(bool)
		it.Visibility = &v
	case "forSuggestionGeneration":
		v := attr.Value.(bool)
		it.ForSuggestionGeneration = &v
	}
}
