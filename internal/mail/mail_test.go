package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jekabolt/retail-stats/internal/entity"
)

func testConfig() *Config {
	return &Config{
		APIKey:    "SG.fake",
		FromEmail: "alerts@example.com",
		FromName:  "Retail Stats",
		To:        []string{"manager@example.com"},
	}
}

func TestNew(t *testing.T) {
	m, err := New(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, m)
}

func TestNewIncompleteConfig(t *testing.T) {
	c := testConfig()
	c.FromEmail = ""
	_, err := New(c)
	assert.Error(t, err)

	c = testConfig()
	c.APIKey = ""
	_, err = New(c)
	assert.Error(t, err)

	c = testConfig()
	c.To = nil
	_, err = New(c)
	assert.Error(t, err)
}

func TestSendLowStockAlertNoProducts(t *testing.T) {
	m, err := New(testConfig())
	assert.NoError(t, err)

	// nothing to report, nothing goes out
	assert.NoError(t, m.SendLowStockAlert(context.Background(), nil))
}

func TestLowStockTemplate(t *testing.T) {
	m, err := New(testConfig())
	assert.NoError(t, err)

	mailer, ok := m.(*Mailer)
	assert.True(t, ok)

	html := &strings.Builder{}
	err = mailer.lowStock.Execute(html, struct {
		Products []entity.LowStockProduct
	}{Products: []entity.LowStockProduct{
		{ProductID: 2, Name: "Hat", Stock: 0},
		{ProductID: 3, Name: "Gloves", Stock: 2},
	}})
	assert.NoError(t, err)

	assert.Contains(t, html.String(), "Hat")
	assert.Contains(t, html.String(), "Gloves")
	assert.Contains(t, html.String(), "2")
}
