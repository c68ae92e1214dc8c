package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatements() string {
	var b strings.Builder
	for _, m := range migrations {
		for _, s := range m.stmts {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func TestMigrations_VersionesConsecutivas(t *testing.T) {
	require.NotEmpty(t, migrations)
	for i, m := range migrations {
		assert.Equal(t, i+1, m.version,
			"las versiones deben ser consecutivas desde 1, sin huecos")
		assert.NotEmpty(t, m.stmts)
	}
}

func TestMigrations_ClavesForaneasEnCascada(t *testing.T) {
	ddl := allStatements()

	// Borrar un usuario arrastra sus citas y compras; borrar un doctor o un
	// producto arrastra las filas que lo referencian.
	assert.Contains(t, ddl, `user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE`)
	assert.Contains(t, ddl, `doctor_id    TEXT NOT NULL REFERENCES doctors(id) ON DELETE CASCADE`)
	assert.Contains(t, ddl, `purchase_id         TEXT NOT NULL REFERENCES purchases(id) ON DELETE CASCADE`)
	assert.Contains(t, ddl, `product_id          TEXT NOT NULL REFERENCES pharmacy_products(id) ON DELETE CASCADE`)
}

func TestMigrations_IndicesDeConsulta(t *testing.T) {
	ddl := allStatements()

	for _, idx := range []string{
		"idx_appointments_user_id ON appointments(user_id)",
		"idx_appointments_doctor_id ON appointments(doctor_id)",
		"idx_purchases_user_id ON purchases(user_id)",
		"idx_purchase_items_purchase_id ON purchase_items(purchase_id)",
		"idx_purchase_items_product_id ON purchase_items(product_id)",
	} {
		assert.Contains(t, ddl, idx)
	}
}

func TestMigrations_PharmacyProductsAntesDeSuFK(t *testing.T) {
	// pharmacy_products (v3) debe existir antes de que purchase_items (v4)
	// lo referencie.
	var created, referenced int
	for _, m := range migrations {
		for _, s := range m.stmts {
			if strings.Contains(s, "CREATE TABLE IF NOT EXISTS pharmacy_products") {
				created = m.version
			}
			if strings.Contains(s, "REFERENCES pharmacy_products(id)") {
				referenced = m.version
			}
		}
	}
	require.NotZero(t, created)
	require.NotZero(t, referenced)
	assert.Less(t, created, referenced)
}
