package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/YanWittmann/launch-anything/internal/models"
	"github.com/YanWittmann/launch-anything/internal/services"
)

func TestTileService_CreateOrModify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	otherID := uuid.New()
	tileID := uuid.MustParse("123e4567-e89b-42d3-a456-426614174000")

	tests := []struct {
		name    string
		fields  map[string]string
		setup   func(r *services.MockTileReader, w *services.MockTileWriter, a *services.MockAuthenticator)
		wantErr error
	}{
		{
			name:   "new tile is created then updated",
			fields: map[string]string{models.TileFieldLabel: "Calc"},
			setup: func(r *services.MockTileReader, w *services.MockTileWriter, a *services.MockAuthenticator) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "Abcdef12").Return(ownerID, nil)
				r.EXPECT().GetByID(gomock.Any(), tileID).Return(nil, nil)
				w.EXPECT().Save(gomock.Any(), tileID, ownerID).Return(nil)
				w.EXPECT().UpdateFields(gomock.Any(), tileID, map[string]string{models.TileFieldLabel: "Calc"}).Return(nil)
			},
		},
		{
			name:   "existing own tile is only updated",
			fields: map[string]string{models.TileFieldAction: "open calc"},
			setup: func(r *services.MockTileReader, w *services.MockTileWriter, a *services.MockAuthenticator) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "Abcdef12").Return(ownerID, nil)
				r.EXPECT().GetByID(gomock.Any(), tileID).Return(&models.TileDB{TileID: tileID, UserID: ownerID, Label: "Calc"}, nil)
				w.EXPECT().UpdateFields(gomock.Any(), tileID, map[string]string{models.TileFieldAction: "open calc"}).Return(nil)
			},
		},
		{
			name:   "tile owned by another user is untouched",
			fields: map[string]string{models.TileFieldLabel: "stolen"},
			setup: func(r *services.MockTileReader, w *services.MockTileWriter, a *services.MockAuthenticator) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "Abcdef12").Return(ownerID, nil)
				r.EXPECT().GetByID(gomock.Any(), tileID).Return(&models.TileDB{TileID: tileID, UserID: otherID}, nil)
				// no writer expectations: any mutation would fail the test
			},
			wantErr: services.ErrNotTileOwner,
		},
		{
			name:   "invalid credentials stop before any store access",
			fields: map[string]string{},
			setup: func(r *services.MockTileReader, w *services.MockTileWriter, a *services.MockAuthenticator) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "Abcdef12").Return(uuid.Nil, services.ErrInvalidCredentials)
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockTileReader(ctrl)
			mockWriter := services.NewMockTileWriter(ctrl)
			mockAuth := services.NewMockAuthenticator(ctrl)
			tt.setup(mockReader, mockWriter, mockAuth)

			svc := services.NewTileService(mockReader, mockWriter, mockAuth, nil)

			err := svc.CreateOrModify(context.Background(), "alice", "Abcdef12", tileID, tt.fields)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTileService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	otherID := uuid.New()
	tileID := uuid.MustParse("123e4567-e89b-42d3-a456-426614174000")

	tests := []struct {
		name    string
		setup   func(r *services.MockTileReader, w *services.MockTileWriter, a *services.MockAuthenticator)
		wantErr error
	}{
		{
			name: "successful remove",
			setup: func(r *services.MockTileReader, w *services.MockTileWriter, a *services.MockAuthenticator) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "Abcdef12").Return(ownerID, nil)
				r.EXPECT().GetByID(gomock.Any(), tileID).Return(&models.TileDB{TileID: tileID, UserID: ownerID}, nil)
				w.EXPECT().Delete(gomock.Any(), tileID).Return(nil)
			},
		},
		{
			name: "tile not found",
			setup: func(r *services.MockTileReader, w *services.MockTileWriter, a *services.MockAuthenticator) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "Abcdef12").Return(ownerID, nil)
				r.EXPECT().GetByID(gomock.Any(), tileID).Return(nil, nil)
			},
			wantErr: services.ErrTileNotFound,
		},
		{
			name: "ownership checked before the delete",
			setup: func(r *services.MockTileReader, w *services.MockTileWriter, a *services.MockAuthenticator) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "Abcdef12").Return(ownerID, nil)
				r.EXPECT().GetByID(gomock.Any(), tileID).Return(&models.TileDB{TileID: tileID, UserID: otherID}, nil)
				// no Delete expectation: deleting would fail the test
			},
			wantErr: services.ErrNotTileOwner,
		},
		{
			name: "invalid credentials",
			setup: func(r *services.MockTileReader, w *services.MockTileWriter, a *services.MockAuthenticator) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "Abcdef12").Return(uuid.Nil, services.ErrInvalidCredentials)
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockTileReader(ctrl)
			mockWriter := services.NewMockTileWriter(ctrl)
			mockAuth := services.NewMockAuthenticator(ctrl)
			tt.setup(mockReader, mockWriter, mockAuth)

			svc := services.NewTileService(mockReader, mockWriter, mockAuth, nil)

			err := svc.Remove(context.Background(), "alice", "Abcdef12", tileID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTileService_ListForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	tileID := uuid.MustParse("123e4567-e89b-42d3-a456-426614174000")

	t.Run("returns the user's tiles", func(t *testing.T) {
		mockReader := services.NewMockTileReader(ctrl)
		mockWriter := services.NewMockTileWriter(ctrl)
		mockAuth := services.NewMockAuthenticator(ctrl)

		mockAuth.EXPECT().Authenticate(gomock.Any(), "alice", "Abcdef12").Return(ownerID, nil)
		mockReader.EXPECT().ListByUserID(gomock.Any(), ownerID).Return([]models.TileDB{
			{TileID: tileID, UserID: ownerID, Label: "Calc", Category: "tools"},
		}, nil)

		svc := services.NewTileService(mockReader, mockWriter, mockAuth, nil)

		tiles, err := svc.ListForUser(context.Background(), "alice", "Abcdef12")
		assert.NoError(t, err)
		assert.Equal(t, []models.Tile{
			{ID: tileID.String(), Label: "Calc", Category: "tools"},
		}, tiles)
	})

	t.Run("zero tiles is an empty list, not an error", func(t *testing.T) {
		mockReader := services.NewMockTileReader(ctrl)
		mockWriter := services.NewMockTileWriter(ctrl)
		mockAuth := services.NewMockAuthenticator(ctrl)

		mockAuth.EXPECT().Authenticate(gomock.Any(), "alice", "Abcdef12").Return(ownerID, nil)
		mockReader.EXPECT().ListByUserID(gomock.Any(), ownerID).Return([]models.TileDB{}, nil)

		svc := services.NewTileService(mockReader, mockWriter, mockAuth, nil)

		tiles, err := svc.ListForUser(context.Background(), "alice", "Abcdef12")
		assert.NoError(t, err)
		assert.NotNil(t, tiles)
		assert.Empty(t, tiles)
	})

	t.Run("wrong password yields invalid credentials, not an empty list", func(t *testing.T) {
		mockReader := services.NewMockTileReader(ctrl)
		mockWriter := services.NewMockTileWriter(ctrl)
		mockAuth := services.NewMockAuthenticator(ctrl)

		mockAuth.EXPECT().Authenticate(gomock.Any(), "alice", "Wrongpw12").Return(uuid.Nil, services.ErrInvalidCredentials)

		svc := services.NewTileService(mockReader, mockWriter, mockAuth, nil)

		tiles, err := svc.ListForUser(context.Background(), "alice", "Wrongpw12")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Nil(t, tiles)
	})
}
