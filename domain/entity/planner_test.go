package entity_test

import (
	"fmt"
	"testing"

	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixedNow = "2024-06-01T00:00:00Z"

// stubIDs issues deterministic ids and tokens.
type stubIDs struct {
	ids    int
	tokens int
}

func (s *stubIDs) NewID() string {
	s.ids++
	return fmt.Sprintf("id-%d", s.ids)
}

func (s *stubIDs) NewToken() string {
	s.tokens++
	return fmt.Sprintf("token-%d", s.tokens)
}

type fixedClock struct{}

func (fixedClock) NowISO8601() string { return fixedNow }

func newTestPlanner() *entity.Planner {
	return entity.NewPlanner(&stubIDs{}, fixedClock{})
}

func strPtr(v string) *string { return &v }

func TestPlanCreateStartup(t *testing.T) {
	p := newTestPlanner()

	entityID, set, err := p.PlanCreate(entity.TypeStartup, &entity.Input{
		DisplayName: strPtr("Acme"),
		Email:       strPtr("hello@acme.ph"),
		Contacts:    []entity.Contact{{Platform: "website", Value: "https://acme.ph"}},
		Founders:    []entity.Founder{{FounderID: "f-1", Name: "Ana"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", entityID)

	assert.True(t, set.Atomic)
	require.Len(t, set.Ops, 3) // METADATA + CONTACTS + FOUNDERS

	meta := set.Ops[0].Item
	assert.Equal(t, entity.OpPut, set.Ops[0].Kind)
	assert.Equal(t, "STARTUP#id-1", meta.HashKey)
	assert.Equal(t, "STARTUP#METADATA", meta.RangeKey)
	assert.Equal(t, "Acme", meta.StartUpName)
	assert.Equal(t, "id-1", meta.StartupID)
	assert.Equal(t, fixedNow, meta.CreatedAt)

	// Every item of one create shares the partition, timestamp, and token.
	for _, op := range set.Ops {
		assert.Equal(t, "STARTUP#id-1", op.Item.HashKey)
		assert.Equal(t, fixedNow, op.Item.CreatedAt)
		assert.Equal(t, meta.GSI1PK, op.Item.GSI1PK)
	}
	assert.Equal(t, "STARTUP#CONTACTS", set.Ops[1].Item.RangeKey)
	assert.Equal(t, "STARTUP#FOUNDERS", set.Ops[2].Item.RangeKey)
}

func TestPlanCreateSkipsEmptyPages(t *testing.T) {
	p := newTestPlanner()

	_, set, err := p.PlanCreate(entity.TypeEnabler, &entity.Input{
		DisplayName: strPtr("Seed Fund"),
	})
	require.NoError(t, err)
	require.Len(t, set.Ops, 1)
	assert.Equal(t, "ENABLER#METADATA", set.Ops[0].Item.RangeKey)
	assert.Equal(t, "Seed Fund", set.Ops[0].Item.EnablerName)
}

func TestPlanCreateValidation(t *testing.T) {
	p := newTestPlanner()

	_, _, err := p.PlanCreate(entity.Type("INVESTOR"), &entity.Input{DisplayName: strPtr("x")})
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, _, err = p.PlanCreate(entity.TypeStartup, &entity.Input{})
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, _, err = p.PlanCreate(entity.TypeStartup, &entity.Input{DisplayName: strPtr("   ")})
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestPlanUpdateTouchesOnlySuppliedFields(t *testing.T) {
	p := newTestPlanner()

	set, err := p.PlanUpdate(entity.TypeStartup, "s-1", &entity.Input{
		Email: strPtr("new@acme.ph"),
	})
	require.NoError(t, err)
	assert.True(t, set.Atomic)
	require.Len(t, set.Ops, 1)

	op := set.Ops[0]
	assert.Equal(t, entity.OpUpdate, op.Kind)
	assert.True(t, op.RequireExists)
	assert.Equal(t, "STARTUP#METADATA", op.Key.RangeKey)

	names := make([]string, 0, len(op.Set))
	for _, attr := range op.Set {
		names = append(names, attr.Name)
	}
	assert.Equal(t, []string{"forSuggestionGeneration", "email", "updatedAt"}, names)

	// Email alone does not make suggestions stale.
	assert.Equal(t, false, op.Set[0].Value)
}

func TestPlanUpdateRaisesSuggestionFlag(t *testing.T) {
	p := newTestPlanner()

	set, err := p.PlanUpdate(entity.TypeStartup, "s-1", &entity.Input{
		Description: strPtr("pivoted to B2B"),
	})
	require.NoError(t, err)
	assert.Equal(t, "forSuggestionGeneration", set.Ops[0].Set[0].Name)
	assert.Equal(t, true, set.Ops[0].Set[0].Value)

	// Page fields count too.
	set, err = p.PlanUpdate(entity.TypeEnabler, "e-1", &entity.Input{
		Portfolio: []entity.PortfolioItem{{SupportedStartupProject: "Acme"}},
	})
	require.NoError(t, err)
	assert.Equal(t, true, set.Ops[0].Set[0].Value)
}

func TestPlanUpdateReplacesSuppliedPages(t *testing.T) {
	p := newTestPlanner()

	set, err := p.PlanUpdate(entity.TypeStartup, "s-1", &entity.Input{
		Milestones: []entity.Milestone{{Title: "launch", DateAchieved: "2024-05-01"}},
	})
	require.NoError(t, err)
	require.Len(t, set.Ops, 2)

	page := set.Ops[1]
	assert.Equal(t, "STARTUP#MILESTONES", page.Key.RangeKey)
	assert.True(t, page.RequireExists)
	assert.Equal(t, "milestones", page.Set[0].Name)
}

func TestPlanUpdateValidation(t *testing.T) {
	p := newTestPlanner()

	_, err := p.PlanUpdate(entity.TypeStartup, "", &entity.Input{})
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, err = p.PlanUpdate(entity.Type("bogus"), "s-1", &entity.Input{})
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestPlanNameChangeRequestPending(t *testing.T) {
	p := newTestPlanner()

	requestID, set, err := p.PlanNameChangeRequest(entity.TypeStartup, "s-1", "Acme Labs", "Acme")
	require.NoError(t, err)
	assert.Equal(t, "id-1", requestID)
	require.Len(t, set.Ops, 1)

	it := set.Ops[0].Item
	assert.Equal(t, "STARTUP#s-1", it.HashKey)
	assert.Equal(t, entity.RequestRangeKey(requestID), it.RangeKey)
	assert.Equal(t, "NAME_CHANGE", it.RequestType)
	assert.Equal(t, "Acme Labs", it.NewName)
	assert.Equal(t, "Acme", it.OriginalName)
	assert.Nil(t, it.IsApproved)
	assert.NotEmpty(t, it.GSI2PK)
}

func TestPlanNameChangeResponseRejection(t *testing.T) {
	p := newTestPlanner()

	set, err := p.PlanNameChangeResponse(entity.TypeStartup, "s-1", "req-1", false, "Acme Labs")
	require.NoError(t, err)
	assert.True(t, set.Atomic)
	require.Len(t, set.Ops, 1)

	op := set.Ops[0]
	assert.Equal(t, entity.RequestRangeKey("req-1"), op.Key.RangeKey)
	assert.True(t, op.RequireExists)
	assert.Equal(t, "isApproved", op.Set[0].Name)
	assert.Equal(t, false, op.Set[0].Value)

	// The verdict is terminal: a settled isApproved blocks the write.
	assert.Equal(t, "isApproved", op.RequireAbsent)
}

func TestPlanNameChangeResponseApprovalRenames(t *testing.T) {
	p := newTestPlanner()

	set, err := p.PlanNameChangeResponse(entity.TypeEnabler, "e-1", "req-1", true, "New Fund")
	require.NoError(t, err)
	assert.True(t, set.Atomic)
	require.Len(t, set.Ops, 2)

	assert.Equal(t, "isApproved", set.Ops[0].RequireAbsent)

	meta := set.Ops[1]
	assert.Equal(t, "ENABLER#METADATA", meta.Key.RangeKey)
	assert.True(t, meta.RequireExists)
	assert.Empty(t, meta.RequireAbsent)
	assert.Equal(t, "enablerName", meta.Set[0].Name)
	assert.Equal(t, "New Fund", meta.Set[0].Value)
}

func TestPlanNameChangeResponseApprovalNeedsName(t *testing.T) {
	p := newTestPlanner()

	_, err := p.PlanNameChangeResponse(entity.TypeStartup, "s-1", "req-1", true, " ")
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestPlanSaveAndUnsaveProfile(t *testing.T) {
	p := newTestPlanner()

	set, err := p.PlanSaveProfile(entity.TypeEnabler, "e-1", entity.TypeStartup, "s-1")
	require.NoError(t, err)
	require.Len(t, set.Ops, 1)

	it := set.Ops[0].Item
	assert.Equal(t, "ENABLER#e-1", it.HashKey)
	assert.Equal(t, "ENABLER#SAVED_PROFILE#STARTUP#s-1", it.RangeKey)
	assert.Equal(t, "s-1", it.SavedProfileID)
	assert.Equal(t, "STARTUP", it.SavedProfileType)

	unset, err := p.PlanUnsaveProfile(entity.TypeEnabler, "e-1", entity.TypeStartup, "s-1")
	require.NoError(t, err)
	require.Len(t, unset.Ops, 1)
	assert.Equal(t, entity.OpDelete, unset.Ops[0].Kind)
	assert.Equal(t, it.Key(), unset.Ops[0].Key)
}

func TestPlanSuggestionFlagReset(t *testing.T) {
	p := newTestPlanner()

	keys := []entity.Key{
		{HashKey: "STARTUP#s-1", RangeKey: "STARTUP#METADATA"},
		{HashKey: "STARTUP#s-2", RangeKey: "STARTUP#METADATA"},
	}
	set := p.PlanSuggestionFlagReset(keys, false)
	require.Len(t, set.Ops, 2)
	assert.False(t, set.Atomic)

	for i, op := range set.Ops {
		assert.Equal(t, keys[i], op.Key)
		assert.True(t, op.RequireExists)
		assert.Equal(t, "forSuggestionGeneration", op.Set[0].Name)
		assert.Equal(t, false, op.Set[0].Value)
	}
}
