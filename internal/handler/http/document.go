package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/document"
	"github.com/paycycle-hq/paycycle-backend-go/internal/handler/http/response"
)

const maxDocumentFormSize = 26 << 20

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

func (h *documentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxDocumentFormSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := document.UploadDocumentRequest{
		Title: r.FormValue("title"),
	}
	if employeeID := r.FormValue("employee_id"); employeeID != "" {
		req.EmployeeID = &employeeID
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = header
	}

	result, err := h.documentService.UploadDocument(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded", result)
}

func (h *documentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter document.DocumentFilter
	filter.Page, filter.Limit = parsePagination(r)

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	result, err := h.documentService.ListDocuments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *documentHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Document ID is required", nil)
		return
	}

	reader, doc, err := h.documentService.DownloadDocument(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Disposition", "attachment; filename=\""+doc.FileName+"\"")
	w.Header().Set("Content-Type", doc.ContentType)
	if _, err := io.Copy(w, reader); err != nil {
		return
	}
}

func (h *documentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Document ID is required", nil)
		return
	}

	if err := h.documentService.DeleteDocument(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted successfully", nil)
}
