package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// Every endpoint answers with the {success, data|error} envelope.

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(201).JSON(fiber.Map{"success": true, "data": data})
}

func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"success": true, "message": message})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

// Postgres error codes worth translating into something user-readable
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// respondDBError maps constraint violations onto friendly messages instead
// of leaking raw driver errors.
func respondDBError(c *fiber.Ctx, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return respondError(c, 409, "A record with these values already exists")
		case pgForeignKeyViolation:
			return respondError(c, 400, "Referenced record does not exist")
		}
	}
	return respondError(c, 500, "Internal Server Error")
}
