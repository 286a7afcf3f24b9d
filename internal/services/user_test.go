package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-player-stats/internal/models"
	"github.com/sbilibin2017/gw-player-stats/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type userMocks struct {
	reader      *services.MockUserReader
	writer      *services.MockUserWriter
	statsReader *services.MockStatsReader
	cache       *services.MockUserCache
	kafka       *services.MockKafkaWriter
}

func newUserMocks(ctrl *gomock.Controller) userMocks {
	return userMocks{
		reader:      services.NewMockUserReader(ctrl),
		writer:      services.NewMockUserWriter(ctrl),
		statsReader: services.NewMockStatsReader(ctrl),
		cache:       services.NewMockUserCache(ctrl),
		kafka:       services.NewMockKafkaWriter(ctrl),
	}
}

func (m userMocks) service() *services.UserService {
	return services.NewUserService(m.reader, m.writer, m.statsReader, m.cache, m.kafka, bcrypt.MinCost)
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m userMocks)
		want    *models.UserResponse
		wantErr error
	}{
		{
			name: "successful registration",
			setup: func(m userMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.writer.EXPECT().
					Save(gomock.Any(), "alice", gomock.Any()).
					DoAndReturn(func(_ context.Context, username, hash string) (*models.UserDB, error) {
						assert.NotEqual(t, "pw1", hash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw1")))
						return &models.UserDB{ID: 1, Username: username, Password: hash}, nil
					})
				m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: &models.UserResponse{ID: 1, Username: "alice", Stats: []models.StatsResponse{}},
		},
		{
			name: "user already exists",
			setup: func(m userMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.UserDB{ID: 1, Username: "alice"}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "concurrent insert hits unique constraint",
			setup: func(m userMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), "alice", gomock.Any()).Return(nil, models.ErrUniqueViolation)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "reader error",
			setup: func(m userMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name: "writer error",
			setup: func(m userMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), "alice", gomock.Any()).Return(nil, errors.New("save error"))
			},
			wantErr: errors.New("save error"),
		},
		{
			name: "publish failure does not fail the request",
			setup: func(m userMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), "alice", gomock.Any()).Return(&models.UserDB{ID: 2, Username: "alice"}, nil)
				m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			want: &models.UserResponse{ID: 2, Username: "alice", Stats: []models.StatsResponse{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newUserMocks(ctrl)
			tt.setup(m)

			got, err := m.service().Create(context.Background(), "alice", "pw1")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUserService_Verify(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	alice := &models.UserDB{ID: 1, Username: "alice", Password: string(hashed)}

	tests := []struct {
		name     string
		username string
		password string
		setup    func(m userMocks)
		want     *models.UserResponse
		wantErr  error
	}{
		{
			name:     "valid credentials",
			username: "alice",
			password: "secret",
			setup: func(m userMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
				m.statsReader.EXPECT().ListByUserIDs(gomock.Any(), []int64{1}).
					Return([]models.StatsDB{{StatsID: 1, Wins: 3, Losses: 1, UserID: 1}}, nil)
			},
			want: &models.UserResponse{
				ID:       1,
				Username: "alice",
				Stats:    []models.StatsResponse{{StatsID: 1, Wins: 3, Losses: 1}},
			},
		},
		{
			name:     "unknown username",
			username: "mallory",
			password: "secret",
			setup: func(m userMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "mallory").Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			setup: func(m userMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			username: "alice",
			password: "secret",
			setup: func(m userMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newUserMocks(ctrl)
			tt.setup(m)

			got, err := m.service().Verify(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newUserMocks(ctrl)
	m.reader.EXPECT().List(gomock.Any()).Return([]models.UserDB{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}, nil)
	m.statsReader.EXPECT().ListByUserIDs(gomock.Any(), []int64{1, 2}).Return([]models.StatsDB{
		{StatsID: 5, Wins: 1, Losses: 0, UserID: 2},
	}, nil)

	users, err := m.service().List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []models.UserResponse{
		{ID: 1, Username: "alice", Stats: []models.StatsResponse{}},
		{ID: 2, Username: "bob", Stats: []models.StatsResponse{{StatsID: 5, Wins: 1, Losses: 0}}},
	}, users)
}

func TestUserService_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newUserMocks(ctrl)
	m.reader.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.statsReader.EXPECT().ListByUserIDs(gomock.Any(), []int64{}).Return(nil, nil)

	users, err := m.service().List(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserService_Get(t *testing.T) {
	alice := models.UserResponse{ID: 1, Username: "alice", Stats: []models.StatsResponse{}}

	t.Run("cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserMocks(ctrl)
		m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(&alice, nil)

		got, err := m.service().Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, &alice, got)
	})

	t.Run("cache miss loads and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserMocks(ctrl)
		m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1, Username: "alice"}, nil)
		m.statsReader.EXPECT().ListByUserIDs(gomock.Any(), []int64{1}).Return(nil, nil)
		m.cache.EXPECT().Set(gomock.Any(), alice).Return(nil)

		got, err := m.service().Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, &alice, got)
	})

	t.Run("cache error falls back to storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserMocks(ctrl)
		m.cache.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("redis down"))
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1, Username: "alice"}, nil)
		m.statsReader.EXPECT().ListByUserIDs(gomock.Any(), []int64{1}).Return(nil, nil)
		m.cache.EXPECT().Set(gomock.Any(), alice).Return(errors.New("redis down"))

		got, err := m.service().Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, &alice, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserMocks(ctrl)
		m.cache.EXPECT().Get(gomock.Any(), int64(9)).Return(nil, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

		got, err := m.service().Get(context.Background(), 9)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("without cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserMocks(ctrl)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1, Username: "alice"}, nil)
		m.statsReader.EXPECT().ListByUserIDs(gomock.Any(), []int64{1}).Return(nil, nil)

		svc := services.NewUserService(m.reader, m.writer, m.statsReader, nil, nil, bcrypt.MinCost)
		got, err := svc.Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, &alice, got)
	})
}

func TestUserService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m userMocks)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(m userMocks) {
				m.writer.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(nil)
				m.cache.EXPECT().Invalidate(gomock.Any(), int64(1)).Return(nil)
				m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not found",
			setup: func(m userMocks) {
				m.writer.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(models.ErrNotFound)
			},
			wantErr: services.ErrUserNotFound,
		},
		{
			name: "storage error",
			setup: func(m userMocks) {
				m.writer.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newUserMocks(ctrl)
			tt.setup(m)

			err := m.service().Delete(context.Background(), 1)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
