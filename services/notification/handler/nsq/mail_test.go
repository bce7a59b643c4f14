package nsq

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/services/notification/mocks"
	"github.com/Juankcba/choapp-back/services/notification/usecase"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestMailHandler_HandleMessage(t *testing.T) {
	job := models.MailJob{Template: models.MailCaregiverSelected, To: "cg@example.com", Name: "Laura"}
	body, _ := json.Marshal(job)

	tests := []struct {
		name        string
		body        []byte
		setupMock   func(*mocks.MockNotificationUC)
		expectError bool
	}{
		{
			name: "delivered",
			body: body,
			setupMock: func(m *mocks.MockNotificationUC) {
				m.EXPECT().DeliverMail(gomock.Any(), job).Return(nil)
			},
		},
		{
			name:      "malformed payload is dropped",
			body:      []byte("{not json"),
			setupMock: func(m *mocks.MockNotificationUC) {},
		},
		{
			name: "unknown template is dropped",
			body: body,
			setupMock: func(m *mocks.MockNotificationUC) {
				m.EXPECT().DeliverMail(gomock.Any(), job).
					Return(fmt.Errorf("%w: %q", usecase.ErrUnknownTemplate, "x"))
			},
		},
		{
			name: "provider failure is requeued",
			body: body,
			setupMock: func(m *mocks.MockNotificationUC) {
				m.EXPECT().DeliverMail(gomock.Any(), job).Return(errors.New("timeout"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := mocks.NewMockNotificationUC(ctrl)
			tt.setupMock(uc)
			h := NewMailHandler(uc, &models.Config{})

			err := h.HandleMessage(tt.body)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMailHandler_StopWithoutConsumers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewMailHandler(mocks.NewMockNotificationUC(ctrl), &models.Config{})
	h.Stop()
	assert.Empty(t, h.consumers)
}
