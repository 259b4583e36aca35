package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

type mock struct {
	*MockRepository
	*MockHandlerFactory
}

func newMock(ctrl *gomock.Controller) *mock {
	return &mock{
		MockRepository:     NewMockRepository(ctrl),
		MockHandlerFactory: NewMockHandlerFactory(ctrl),
	}
}

func errorAssertion(expectedError error, expectedErrMsg string) require.ErrorAssertionFunc {
	return func(t require.TestingT, err error, msgAndArgs ...interface{}) {
		require.Error(t, err, msgAndArgs...)

		if expectedError != nil {
			assert.ErrorIs(t, err, expectedError, msgAndArgs...)
		}

		if expectedErrMsg != "" {
			assert.Contains(t, err.Error(), expectedErrMsg, msgAndArgs...)
		}
	}
}

func TestOrderService_ProcessOrderStatusChange(t *testing.T) {
	t.Parallel()

	confirmedOrder := &entities.Order{
		Number:          "ORD-1001",
		StoreID:         7,
		FulfillmentType: entities.FulfillmentDelivery,
		Status:          entities.OrderConfirmed,
	}

	tests := []struct {
		name           string
		orderModify    entities.OrderModify
		mockSetup      func(m *mock)
		resultChecker  func(t *testing.T, result *entities.Order)
		errorAssertion require.ErrorAssertionFunc
	}{
		{
			name: "Успешная обработка события confirmed",
			orderModify: entities.OrderModify{
				Number: pointer.To("ORD-1001"),
				Status: pointer.To(entities.OrderConfirmed),
			},
			mockSetup: func(m *mock) {
				handled := false
				m.MockRepository.EXPECT().
					GetByNumber(gomock.Any(), "ORD-1001").
					Return(confirmedOrder, nil)
				m.MockHandlerFactory.EXPECT().
					GetHandler(entities.OrderConfirmed).
					Return(order.ExecuteFn(func(ctx context.Context, o *entities.Order) error {
						handled = true
						return nil
					}), nil)
				t.Cleanup(func() {
					assert.True(t, handled, "обработчик статуса не был вызван")
				})
			},
			resultChecker: func(t *testing.T, result *entities.Order) {
				require.NotNil(t, result)
				assert.Equal(t, "ORD-1001", result.Number)
			},
			errorAssertion: require.NoError,
		},
		{
			name: "Событие без номера заказа",
			orderModify: entities.OrderModify{
				Status: pointer.To(entities.OrderConfirmed),
			},
			resultChecker: func(t *testing.T, result *entities.Order) {
				assert.Nil(t, result)
			},
			errorAssertion: errorAssertion(nil, "order number and status are required"),
		},
		{
			name: "Статус события расходится с локальным заказом",
			orderModify: entities.OrderModify{
				Number: pointer.To("ORD-1001"),
				Status: pointer.To(entities.OrderCancelled),
			},
			mockSetup: func(m *mock) {
				m.MockRepository.EXPECT().
					GetByNumber(gomock.Any(), "ORD-1001").
					Return(confirmedOrder, nil)
			},
			resultChecker: func(t *testing.T, result *entities.Order) {
				require.NotNil(t, result)
				assert.Equal(t, entities.OrderConfirmed, result.Status)
			},
			errorAssertion: errorAssertion(order.ErrStatusMismatch, ""),
		},
		{
			name: "Заказ не найден в локальной таблице",
			orderModify: entities.OrderModify{
				Number: pointer.To("ORD-9999"),
				Status: pointer.To(entities.OrderConfirmed),
			},
			mockSetup: func(m *mock) {
				m.MockRepository.EXPECT().
					GetByNumber(gomock.Any(), "ORD-9999").
					Return(nil, order.ErrOrderNotFound)
			},
			resultChecker: func(t *testing.T, result *entities.Order) {
				assert.Nil(t, result)
			},
			errorAssertion: errorAssertion(order.ErrOrderNotFound, ""),
		},
		{
			name: "Необрабатываемый статус пропускается без ошибки",
			orderModify: entities.OrderModify{
				Number: pointer.To("ORD-1001"),
				Status: pointer.To(entities.OrderStatusType("draft")),
			},
			mockSetup: func(m *mock) {
				draftOrder := *confirmedOrder
				draftOrder.Status = entities.OrderStatusType("draft")
				m.MockRepository.EXPECT().
					GetByNumber(gomock.Any(), "ORD-1001").
					Return(&draftOrder, nil)
				m.MockHandlerFactory.EXPECT().
					GetHandler(entities.OrderStatusType("draft")).
					Return(nil, order.ErrUndefinedStatus)
			},
			resultChecker: func(t *testing.T, result *entities.Order) {
				require.NotNil(t, result)
			},
			errorAssertion: require.NoError,
		},
		{
			name: "Ошибка обработчика пробрасывается",
			orderModify: entities.OrderModify{
				Number: pointer.To("ORD-1001"),
				Status: pointer.To(entities.OrderConfirmed),
			},
			mockSetup: func(m *mock) {
				m.MockRepository.EXPECT().
					GetByNumber(gomock.Any(), "ORD-1001").
					Return(confirmedOrder, nil)
				m.MockHandlerFactory.EXPECT().
					GetHandler(entities.OrderConfirmed).
					Return(order.ExecuteFn(func(ctx context.Context, o *entities.Order) error {
						return errors.New("delivery creation failed")
					}), nil)
			},
			resultChecker: func(t *testing.T, result *entities.Order) {
				assert.Nil(t, result)
			},
			errorAssertion: errorAssertion(nil, "delivery creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			m := newMock(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			result, err := order.New(m.MockRepository, m.MockHandlerFactory).
				ProcessOrderStatusChange(context.Background(), tt.orderModify)

			tt.errorAssertion(t, err)
			tt.resultChecker(t, result)
		})
	}
}
