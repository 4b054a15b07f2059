package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-spellbook/internal/adapter"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/mock"
	"github.com/MKhiriev/go-spellbook/internal/validators"
	"github.com/MKhiriev/go-spellbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSpellSvc(t *testing.T) (SpellService, *mock.MockSpellAPIAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockSpellAPIAdapter(ctrl)

	return NewSpellService(api, validators.NewCharacterValidator(), logger.Nop()), api
}

func TestSpellService_GetSpell(t *testing.T) {
	svc, api := newTestSpellSvc(t)
	ctx := context.Background()

	api.EXPECT().GetSpell(ctx, "fire-bolt").Return(models.Spell{Index: "fire-bolt", Name: "Fire Bolt"}, nil)

	spell, err := svc.GetSpell(ctx, "fire-bolt")
	require.NoError(t, err)
	assert.Equal(t, "Fire Bolt", spell.Name)
}

func TestSpellService_GetSpell_InvalidKeyNeverCallsUpstream(t *testing.T) {
	svc, _ := newTestSpellSvc(t)

	_, err := svc.GetSpell(context.Background(), "../classes")
	require.ErrorIs(t, err, ErrInvalidSpellQuery)
	assert.ErrorIs(t, err, validators.ErrInvalidReferenceKey)
}

func TestSpellService_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name        string
		upstreamErr error
		wantErr     error
	}{
		{name: "not found", upstreamErr: fmt.Errorf("%w: status 404", adapter.ErrNotFound), wantErr: ErrClassNotFound},
		{name: "rate limited", upstreamErr: adapter.ErrTooManyRequests, wantErr: ErrReferenceUnavailable},
		{name: "transport failure", upstreamErr: adapter.ErrRequestFailed, wantErr: ErrReferenceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api := newTestSpellSvc(t)
			ctx := context.Background()

			api.EXPECT().GetClass(ctx, "wizard").Return(models.Class{}, tt.upstreamErr)

			_, err := svc.GetClass(ctx, "wizard")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSpellService_ListSpells(t *testing.T) {
	svc, api := newTestSpellSvc(t)
	ctx := context.Background()
	level := 3

	filter := models.SpellFilter{Level: &level, School: "evocation"}
	list := models.APIReferenceList{Count: 1, Results: []models.APIReference{{Index: "fireball", Name: "Fireball"}}}
	api.EXPECT().ListSpells(ctx, filter).Return(list, nil)

	got, err := svc.ListSpells(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestSpellService_ListSpells_LevelOutOfRange(t *testing.T) {
	svc, _ := newTestSpellSvc(t)
	level := 10

	_, err := svc.ListSpells(context.Background(), models.SpellFilter{Level: &level})
	require.ErrorIs(t, err, ErrInvalidSpellQuery)
	assert.ErrorIs(t, err, validators.ErrInvalidSpellLevel)
}

func TestSpellService_ListClassSpells(t *testing.T) {
	svc, api := newTestSpellSvc(t)
	ctx := context.Background()

	api.EXPECT().ListClassSpells(ctx, "bard").Return(models.APIReferenceList{Count: 0}, nil)
	_, err := svc.ListClassSpells(ctx, "bard")
	require.NoError(t, err)

	api.EXPECT().ListClassSpells(ctx, "ghost").Return(models.APIReferenceList{}, adapter.ErrNotFound)
	_, err = svc.ListClassSpells(ctx, "ghost")
	assert.ErrorIs(t, err, ErrClassNotFound)
}
