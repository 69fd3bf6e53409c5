// Package api exposes the extraction pipeline over HTTP: a health probe
// and a multipart PDF-upload endpoint, both Fiber handlers registered
// directly by the CLI's -serve mode.
package api

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/statement-extractor/internal/extract"
	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/writer"
)

const version = "1.0.0"

// ConvertResponse is the JSON response from POST /api/convert.
type ConvertResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	Issuer       string               `json:"issuer,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	Summary      *models.Summary      `json:"summary,omitempty"`
	CSV          string               `json:"csv,omitempty"`
	Count        int                  `json:"count"`
	Version      string               `json:"version,omitempty"`
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleConvert accepts a multipart-form PDF upload (field "file", with an
// optional "password" field and a "header" flag controlling CSV metadata
// rows) and returns the extracted transactions as JSON, with an embedded
// CSV rendering for convenience.
func HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeConvertError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return writeConvertError(c, fiber.StatusBadRequest, "Only PDF files are supported.")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return writeConvertError(c, fiber.StatusInternalServerError, "Failed to open uploaded file.")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return writeConvertError(c, fiber.StatusInternalServerError, "Failed to read uploaded file.")
	}

	password := c.FormValue("password")
	includeHeader := c.FormValue("header") != "false"

	result, err := extract.Extract(context.Background(), data, password, nil)
	if err != nil {
		return writeConvertError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("Extraction failed: %v", err))
	}

	var csvBuf strings.Builder
	csvWriter := &writer.CSVWriter{IncludeHeader: includeHeader}
	if err := csvWriter.Write(&csvBuf, result); err != nil {
		return writeConvertError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	txns := result.Transactions
	if txns == nil {
		txns = []models.Transaction{}
	}

	return c.JSON(ConvertResponse{
		Success:      true,
		Issuer:       string(result.Summary.Issuer),
		Transactions: txns,
		Summary:      &result.Summary,
		CSV:          csvBuf.String(),
		Count:        len(txns),
		Version:      version,
	})
}

func writeConvertError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success: false,
		Error:   msg,
	})
}
