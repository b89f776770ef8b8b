package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rotaduty/slack-duty-bot/mocks"
)

type allMocks struct {
	mockStore       *mocks.MockQueueStore
	mockDataManager *mocks.MockDataManager
	mockHistoryRepo *mocks.MockHistoryRepo
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	store := mocks.NewMockQueueStore(ctrl)

	dm := mocks.NewMockDataManager(ctrl)

	historyRepo := mocks.NewMockHistoryRepo(ctrl)
	dm.EXPECT().History().Return(historyRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockStore:       store,
		mockDataManager: dm,
		mockHistoryRepo: historyRepo,
		mockSlackClient: slackClient,
	}

	// validate service creation
	rotationService := newRotation(store, dm)
	require.NotNil(t, rotationService)

	return
}
