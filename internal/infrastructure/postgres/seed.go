package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
)

// Datos iniciales de la clínica.
var seedDoctors = []entity.Doctor{
	{Name: "Dr. Ana Gómez", Specialty: "Pediatría", Schedule: "L-V 9-17"},
	{Name: "Dra. Laura Flores", Specialty: "Dermatología", Schedule: "M-J 10-18"},
	{Name: "Dr. Carlos Ruiz", Specialty: "Cardiología", Schedule: "L-V 8-16"},
}

var seedProducts = []struct {
	name, description, price string
	stock                    int
}{
	{"Paracetamol 500mg", "Analgésico y antipirético", "5.50", 100},
	{"Ibuprofeno 400mg", "Antiinflamatorio no esteroideo", "8.75", 75},
}

const (
	seedAdminEmail    = "admin@clinica.com"
	seedAdminName     = "Admin General"
	seedAdminDNI      = "99999999"
	seedAdminPassword = "adminpass"
)

// Seed carga los datos iniciales: el usuario administrador (si su email no
// existe) y los médicos y productos de arranque (solo sobre tablas vacías,
// para no duplicar en cada reinicio ni pisar ediciones del admin).
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	if err := seedAdmin(ctx, pool); err != nil {
		return err
	}
	if err := seedDoctorsTable(ctx, pool); err != nil {
		return err
	}
	return seedProductsTable(ctx, pool)
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, seedAdminEmail).Scan(&exists)
	if err != nil {
		return fmt.Errorf("verificar admin: %w", err)
	}
	if exists {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, dni, role) VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New().String(), seedAdminName, seedAdminEmail, string(hash), seedAdminDNI, entity.RoleAdmin,
	)
	if err != nil {
		return fmt.Errorf("insertar admin: %w", err)
	}
	return nil
}

func seedDoctorsTable(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&count); err != nil {
		return fmt.Errorf("contar médicos: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, d := range seedDoctors {
		_, err := pool.Exec(ctx,
			`INSERT INTO doctors (id, name, specialty, schedule) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), d.Name, d.Specialty, d.Schedule,
		)
		if err != nil {
			return fmt.Errorf("insertar médico %s: %w", d.Name, err)
		}
	}
	return nil
}

func seedProductsTable(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM pharmacy_products`).Scan(&count); err != nil {
		return fmt.Errorf("contar productos: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, p := range seedProducts {
		_, err := pool.Exec(ctx,
			`INSERT INTO pharmacy_products (id, name, description, price, stock, image_url) VALUES ($1, $2, $3, $4, $5, '')`,
			uuid.New().String(), p.name, p.description, p.price, p.stock,
		)
		if err != nil {
			return fmt.Errorf("insertar producto %s: %w", p.name, err)
		}
	}
	return nil
}
