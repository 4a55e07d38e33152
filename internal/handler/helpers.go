package handler

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"shopease-api/internal/repository"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func dateRange(c echo.Context) repository.DateRange {
	return repository.DateRange{
		Start: c.QueryParam("start_date"),
		End:   c.QueryParam("end_date"),
	}
}

func uintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(v), nil
}

func parseUintQuery(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

var spreadsheetMIMEs = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel": true,
	"application/octet-stream": true,
}

// spreadsheetFile pulls the uploaded workbook out of the multipart form and
// rejects anything that is not .xlsx/.xls. Size is capped by the BodyLimit
// middleware on the upload routes.
func spreadsheetFile(c echo.Context) (multipart.File, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "only .xlsx and .xls files are accepted")
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && !spreadsheetMIMEs[ct] {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unsupported file type")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}

	return file, nil
}
