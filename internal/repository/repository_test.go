package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zykorwx/dapp/internal/model"
	"github.com/zykorwx/dapp/pkg/config"
	"github.com/zykorwx/dapp/pkg/database"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(&config.DBConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "empleados.db"),
		MaxOpenConns: 1,
		LogLevel:     logger.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, database.MigrateModels(db, &model.Comercio{}, &model.Empleado{}))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func seedComercio(t *testing.T, repo ComercioRepository, nombre string) *model.Comercio {
	t.Helper()
	c := &model.Comercio{Nombre: nombre, Activo: true}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func newEmpleado(comercioID uint, pin string) *model.Empleado {
	return &model.Empleado{Nombre: "Saul", Apellidos: "Pineda", Pin: pin, Activo: true, ComercioID: comercioID}
}

func TestComercioRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewComercioRepository(newTestDB(t))

	key := uuid.MustParse("5a25c9f25c334f4197df4d2aafca5fd9")
	c := &model.Comercio{Nombre: "Comercio 1", Activo: true, APIKey: key}
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID)
	assert.NotEqual(t, uuid.Nil, c.UUID)

	found, err := repo.FindByAPIKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)
	assert.Equal(t, "Comercio 1", found.Nombre)

	_, err = repo.FindByAPIKey(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Create(ctx, &model.Comercio{Nombre: "Copia", APIKey: key})
	assert.ErrorIs(t, err, ErrDuplicated)

	seedComercio(t, repo, "Comercio 2")
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Comercio 1", list[0].Nombre)
}

func TestEmpleadoRepositoryScoping(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	comercios := NewComercioRepository(db)
	repo := NewEmpleadoRepository(db)

	a := seedComercio(t, comercios, "A")
	b := seedComercio(t, comercios, "B")

	ea := newEmpleado(a.ID, "000001")
	require.NoError(t, repo.Create(ctx, ea))
	eb := newEmpleado(b.ID, "000001")
	require.NoError(t, repo.Create(ctx, eb), "the same pin is allowed in another comercio")

	listA, err := repo.List(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, ea.UUID, listA[0].UUID)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = repo.FindByUUID(ctx, a.ID, eb.UUID)
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := repo.FindByUUID(ctx, 0, eb.UUID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, found.ComercioID)

	_, err = repo.Update(ctx, a.ID, eb.UUID, func(e *model.Empleado) { e.Pin = "999999" })
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, a.ID, eb.UUID), ErrNotFound)

	still, err := repo.FindByUUID(ctx, b.ID, eb.UUID)
	require.NoError(t, err)
	assert.Equal(t, "000001", still.Pin)
}

func TestEmpleadoRepositoryWrites(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	c := seedComercio(t, NewComercioRepository(db), "A")
	repo := NewEmpleadoRepository(db)

	e := newEmpleado(c.ID, "000001")
	require.NoError(t, repo.Create(ctx, e))
	assert.NotEqual(t, uuid.Nil, e.UUID)
	assert.False(t, e.FechaCreacion.IsZero())

	assert.ErrorIs(t, repo.Create(ctx, newEmpleado(c.ID, "000001")), ErrDuplicated)

	other := newEmpleado(c.ID, "000002")
	require.NoError(t, repo.Create(ctx, other))

	updated, err := repo.Update(ctx, c.ID, e.UUID, func(x *model.Empleado) {
		x.Nombre = "Leonardo"
		x.Activo = false
	})
	require.NoError(t, err)
	assert.Equal(t, "Leonardo", updated.Nombre)
	assert.False(t, updated.Activo)

	reloaded, err := repo.FindByUUID(ctx, c.ID, e.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Leonardo", reloaded.Nombre)
	assert.False(t, reloaded.Activo)
	assert.Equal(t, e.UUID, reloaded.UUID)

	_, err = repo.Update(ctx, c.ID, e.UUID, func(x *model.Empleado) { x.Pin = "000002" })
	assert.ErrorIs(t, err, ErrDuplicated)

	unchanged, err := repo.FindByUUID(ctx, c.ID, e.UUID)
	require.NoError(t, err)
	assert.Equal(t, "000001", unchanged.Pin)

	require.NoError(t, repo.Delete(ctx, c.ID, e.UUID))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID, e.UUID), ErrNotFound)
	_, err = repo.FindByUUID(ctx, c.ID, e.UUID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := repo.List(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, other.UUID, list[0].UUID)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: main_empleado.pin, main_empleado.comercio_id (2067)")))
	assert.False(t, isUniqueViolation(errors.New("disk I/O error")))
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), ErrDuplicated)
	boom := errors.New("boom")
	assert.Equal(t, boom, translate(boom))
}
