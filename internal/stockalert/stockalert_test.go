package stockalert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jekabolt/retail-stats/internal/dependency/mocks"
	"github.com/jekabolt/retail-stats/internal/entity"
)

func TestCheckStockSendsAlert(t *testing.T) {
	svc := mocks.NewStatistics(t)
	mailer := mocks.NewMailer(t)

	products := []entity.LowStockProduct{
		{ProductID: 2, Name: "Hat", Stock: 0},
		{ProductID: 3, Name: "Gloves", Stock: 2},
	}
	svc.EXPECT().LowStockProducts(mock.Anything, 5, 10).Return(products)
	mailer.EXPECT().SendLowStockAlert(mock.Anything, products).Return(nil)

	w := New(nil, svc, mailer)

	assert.NoError(t, w.checkStock(context.Background()))
}

func TestCheckStockNothingLow(t *testing.T) {
	svc := mocks.NewStatistics(t)
	mailer := mocks.NewMailer(t)

	svc.EXPECT().LowStockProducts(mock.Anything, 5, 10).Return([]entity.LowStockProduct{})

	w := New(nil, svc, mailer)

	// no mail goes out when the report is empty
	assert.NoError(t, w.checkStock(context.Background()))
}

func TestCheckStockMailFailure(t *testing.T) {
	svc := mocks.NewStatistics(t)
	mailer := mocks.NewMailer(t)

	products := []entity.LowStockProduct{{ProductID: 2, Name: "Hat", Stock: 0}}
	svc.EXPECT().LowStockProducts(mock.Anything, 2, 1).Return(products)
	mailer.EXPECT().SendLowStockAlert(mock.Anything, products).Return(errors.New("smtp down"))

	w := New(&Config{WorkerInterval: time.Hour, Threshold: 2, Limit: 1}, svc, mailer)

	assert.Error(t, w.checkStock(context.Background()))
}

func TestStartStop(t *testing.T) {
	svc := mocks.NewStatistics(t)
	mailer := mocks.NewMailer(t)

	w := New(&Config{WorkerInterval: time.Hour}, svc, mailer)

	assert.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))

	assert.NoError(t, w.Stop())
	assert.Error(t, w.Stop())
}

func TestWorkerTick(t *testing.T) {
	svc := mocks.NewStatistics(t)
	mailer := mocks.NewMailer(t)

	sent := make(chan struct{})
	products := []entity.LowStockProduct{{ProductID: 2, Name: "Hat", Stock: 0}}
	svc.EXPECT().LowStockProducts(mock.Anything, 5, 10).Return(products)
	mailer.EXPECT().SendLowStockAlert(mock.Anything, products).
		RunAndReturn(func(context.Context, []entity.LowStockProduct) error {
			select {
			case sent <- struct{}{}:
			default:
			}
			return nil
		})

	w := New(&Config{WorkerInterval: 10 * time.Millisecond, Threshold: 5, Limit: 10}, svc, mailer)
	assert.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never ran the stock check")
	}
}
