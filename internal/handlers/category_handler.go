package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"rentora/internal/models"
	"rentora/internal/services"
	"rentora/utils"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.GetCategories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(categories); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *CategoryHandler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := getParam(r, "slug")
	if slug == "" {
		http.Error(w, "Missing category slug", http.StatusBadRequest)
		return
	}

	category, err := h.Service.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(10 << 20)
	if err != nil {
		http.Error(w, "failed to parse multipart form", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		http.Error(w, "missing category name", http.StatusBadRequest)
		return
	}

	category := models.Category{
		Name:        name,
		Description: r.FormValue("description"),
	}
	if orderStr := r.FormValue("display_order"); orderStr != "" {
		order, err := strconv.Atoi(orderStr)
		if err != nil {
			http.Error(w, "invalid display_order", http.StatusBadRequest)
			return
		}
		category.DisplayOrder = order
	}
	if parentStr := r.FormValue("parent_id"); parentStr != "" {
		parent, err := strconv.Atoi(parentStr)
		if err != nil {
			http.Error(w, "invalid parent_id", http.StatusBadRequest)
			return
		}
		category.ParentID = &parent
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		imageURL, err := uploadImage(file, header.Filename, "categories")
		if err != nil {
			http.Error(w, "cannot save image", http.StatusInternalServerError)
			return
		}
		category.ImagePath = imageURL
	}

	created, err := h.Service.CreateCategory(r.Context(), category)
	if err != nil {
		if isDuplicateEntryError(err) {
			http.Error(w, "category slug already exists", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to create category", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(10 << 20)
	if err != nil {
		http.Error(w, "failed to parse multipart form", http.StatusBadRequest)
		return
	}

	slug := getParam(r, "slug")
	if slug == "" {
		http.Error(w, "Missing category slug", http.StatusBadRequest)
		return
	}

	category := models.Category{
		Slug:        slug,
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		IsActive:    r.FormValue("is_active") != "false",
	}
	if orderStr := r.FormValue("display_order"); orderStr != "" {
		order, err := strconv.Atoi(orderStr)
		if err != nil {
			http.Error(w, "invalid display_order", http.StatusBadRequest)
			return
		}
		category.DisplayOrder = order
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		imageURL, err := uploadImage(file, header.Filename, "categories")
		if err != nil {
			http.Error(w, "cannot save image", http.StatusInternalServerError)
			return
		}
		category.ImagePath = imageURL
	}

	updated, err := h.Service.UpdateCategory(r.Context(), category)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update category", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	slug := getParam(r, "slug")
	if slug == "" {
		http.Error(w, "Missing category slug", http.StatusBadRequest)
		return
	}

	err := h.Service.DeleteCategory(r.Context(), slug)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if isForeignKeyConstraintError(err) {
			http.Error(w, "category still has products", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func uploadImage(file io.Reader, originalName, folder string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(originalName)
	fileName := fmt.Sprintf("%s%s", uuid.NewString(), ext)

	contentType := "application/octet-stream"
	switch ext {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}

	return utils.UploadFileToS3(data, fileName, folder, contentType)
}
