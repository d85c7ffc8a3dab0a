package application_test

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/procrm-api/internal/application"
	"github.com/oksasatya/procrm-api/internal/domain/entity"
	"github.com/oksasatya/procrm-api/internal/domain/repository"
	"github.com/oksasatya/procrm-api/internal/infrastructure/jsonfile"
)

func newLeadService(t *testing.T) *application.LeadService {
	t.Helper()
	store := jsonfile.NewStore(filepath.Join(t.TempDir(), "leads.json"))
	return application.NewLeadService(jsonfile.NewLeadRepository(store), nil)
}

func createLead(t *testing.T, svc *application.LeadService, first, last, company, email, stage string, value float64) *entity.Lead {
	t.Helper()
	l, err := svc.Create(application.CreateLeadInput{
		FirstName: first,
		LastName:  last,
		Company:   company,
		Email:     email,
		Stage:     stage,
		DealValue: value,
	})
	require.NoError(t, err)
	return l
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	svc := newLeadService(t)

	l := createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", "", 50000)

	require.NotEmpty(t, l.ID)
	require.Equal(t, entity.StageProspect, l.Stage, "stage defaults to the top of the funnel")
	require.False(t, l.CreatedAt.IsZero())
	require.True(t, l.CreatedAt.Equal(l.UpdatedAt))

	got, err := svc.Get(l.ID)
	require.NoError(t, err)
	require.Equal(t, "Sarah", got.FirstName)
	require.Equal(t, "Johnson", got.LastName)
	require.Equal(t, "Acme Inc", got.Company)
	require.Equal(t, "sarah@acme.com", got.Email)
	require.Equal(t, 50000.0, got.DealValue)
}

func TestCreateRejectsInvalidStage(t *testing.T) {
	svc := newLeadService(t)
	_, err := svc.Create(application.CreateLeadInput{
		FirstName: "A", LastName: "B", Company: "C", Email: "a@b.com", Stage: "won",
	})
	require.ErrorIs(t, err, application.ErrInvalidStage)
}

func TestCreateRejectsNegativeValue(t *testing.T) {
	svc := newLeadService(t)
	_, err := svc.Create(application.CreateLeadInput{
		FirstName: "A", LastName: "B", Company: "C", Email: "a@b.com", DealValue: -1,
	})
	require.ErrorIs(t, err, application.ErrNegativeValue)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	svc := newLeadService(t)
	l := createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", entity.StageProspect, 50000)

	time.Sleep(5 * time.Millisecond)
	stage := entity.StageQualified
	value := 80000.0
	updated, err := svc.Update(l.ID, application.UpdateLeadInput{Stage: &stage, DealValue: &value})
	require.NoError(t, err)

	require.Equal(t, entity.StageQualified, updated.Stage)
	require.Equal(t, 80000.0, updated.DealValue)
	require.Equal(t, "Sarah", updated.FirstName, "unspecified fields keep their value")
	require.Equal(t, "Acme Inc", updated.Company)
	require.True(t, updated.CreatedAt.Equal(l.CreatedAt))
	require.True(t, updated.UpdatedAt.After(l.UpdatedAt), "updatedAt must strictly advance")
}

func TestUpdateRejectsNegativeValue(t *testing.T) {
	svc := newLeadService(t)
	l := createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", entity.StageProspect, 50000)

	bad := -5.0
	_, err := svc.Update(l.ID, application.UpdateLeadInput{DealValue: &bad})
	require.ErrorIs(t, err, application.ErrNegativeValue)

	got, err := svc.Get(l.ID)
	require.NoError(t, err)
	require.Equal(t, 50000.0, got.DealValue, "rejected patch must not persist")
}

func TestConcurrentUpdatesMergeBothPatches(t *testing.T) {
	svc := newLeadService(t)
	l := createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", entity.StageProspect, 50000)

	company := "Acme Corp"
	notes := "called"
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := svc.Update(l.ID, application.UpdateLeadInput{Company: &company})
		require.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := svc.Update(l.ID, application.UpdateLeadInput{Notes: &notes})
		require.NoError(t, err)
	}()
	wg.Wait()

	got, err := svc.Get(l.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", got.Company, "first patch must survive the second")
	require.Equal(t, "called", got.Notes)
}

func TestUpdateRejectsInvalidStage(t *testing.T) {
	svc := newLeadService(t)
	l := createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", entity.StageProspect, 0)

	bad := "won"
	_, err := svc.Update(l.ID, application.UpdateLeadInput{Stage: &bad})
	require.ErrorIs(t, err, application.ErrInvalidStage)
}

func TestUpdateUnknownLead(t *testing.T) {
	svc := newLeadService(t)
	name := "X"
	_, err := svc.Update("missing", application.UpdateLeadInput{FirstName: &name})
	require.ErrorIs(t, err, repository.ErrLeadNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	svc := newLeadService(t)
	l := createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", entity.StageProspect, 0)
	createLead(t, svc, "Mike", "Chen", "Globex", "mchen@globex.com", entity.StageQualified, 0)

	require.NoError(t, svc.Delete(l.ID))

	_, err := svc.Get(l.ID)
	require.ErrorIs(t, err, repository.ErrLeadNotFound)

	leads, err := svc.List(application.LeadFilter{})
	require.NoError(t, err)
	require.Len(t, leads, 1)

	require.ErrorIs(t, svc.Delete(l.ID), repository.ErrLeadNotFound, "delete of a missing id is an explicit not-found")
}

func TestFilterByStage(t *testing.T) {
	svc := newLeadService(t)
	createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", entity.StageProspect, 0)
	createLead(t, svc, "Mike", "Chen", "Globex", "mchen@globex.com", entity.StageClosed, 0)

	leads, err := svc.List(application.LeadFilter{Stage: entity.StageClosed})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	require.Equal(t, "Globex", leads[0].Company)
}

func TestFilterInvalidStageFails(t *testing.T) {
	svc := newLeadService(t)
	createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", entity.StageProspect, 0)

	_, err := svc.List(application.LeadFilter{Stage: "won"})
	require.ErrorIs(t, err, application.ErrInvalidStage, "an invalid stage is an error, not an empty result")
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	svc := newLeadService(t)
	createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", entity.StageProspect, 0)
	createLead(t, svc, "Mike", "Chen", "Globex", "mchen@globex.com", entity.StageProspect, 0)

	leads, err := svc.List(application.LeadFilter{Search: "acme"})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	require.Equal(t, "Acme Inc", leads[0].Company)

	// last-name match
	leads, err = svc.List(application.LeadFilter{Search: "CHEN"})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	require.Equal(t, "Globex", leads[0].Company)
}

func TestSearchCombinesWithStageFilter(t *testing.T) {
	svc := newLeadService(t)
	createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", entity.StageProspect, 0)
	createLead(t, svc, "Amy", "Stone", "Acme Labs", "amy@acmelabs.com", entity.StageClosed, 0)

	leads, err := svc.List(application.LeadFilter{Stage: entity.StageClosed, Search: "acme"})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	require.Equal(t, "Acme Labs", leads[0].Company)
}

func TestBlankSearchIsNoFilter(t *testing.T) {
	svc := newLeadService(t)
	createLead(t, svc, "Sarah", "Johnson", "Acme Inc", "sarah@acme.com", entity.StageProspect, 0)
	createLead(t, svc, "Mike", "Chen", "Globex", "mchen@globex.com", entity.StageProspect, 0)

	leads, err := svc.List(application.LeadFilter{Search: "   "})
	require.NoError(t, err)
	require.Len(t, leads, 2)
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	svc := newLeadService(t)
	a := createLead(t, svc, "A", "One", "Acme East", "a@acme.com", entity.StageProspect, 0)
	createLead(t, svc, "B", "Two", "Globex", "b@globex.com", entity.StageProspect, 0)
	c := createLead(t, svc, "C", "Three", "Acme West", "c@acme.com", entity.StageProspect, 0)

	leads, err := svc.List(application.LeadFilter{Search: "acme"})
	require.NoError(t, err)
	require.Len(t, leads, 2)
	require.Equal(t, a.ID, leads[0].ID)
	require.Equal(t, c.ID, leads[1].ID)
}
