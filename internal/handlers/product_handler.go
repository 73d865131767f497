package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rentora/internal/models"
	"rentora/internal/services"
)

type ProductHandler struct {
	Service *services.ProductService
}

func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	filter := models.ProductFilter{
		City:    r.URL.Query().Get("city"),
		Search:  r.URL.Query().Get("search"),
		OrderBy: r.URL.Query().Get("ordering"),
	}
	if categoryStr := r.URL.Query().Get("category"); categoryStr != "" {
		categoryID, err := strconv.Atoi(categoryStr)
		if err != nil {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
		filter.CategoryID = categoryID
	}
	if featuredStr := r.URL.Query().Get("is_featured"); featuredStr != "" {
		featured := featuredStr == "true" || featuredStr == "1"
		filter.Featured = &featured
	}

	products, err := h.Service.GetProducts(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

func (h *ProductHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := getParam(r, "slug")
	if slug == "" {
		http.Error(w, "Missing product slug", http.StatusBadRequest)
		return
	}

	product, err := h.Service.GetProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categorySlug := getParam(r, "category_slug")
	if categorySlug == "" {
		http.Error(w, "Missing category slug", http.StatusBadRequest)
		return
	}

	products, err := h.Service.GetProductsByCategorySlug(r.Context(), categorySlug)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "user not authorized", http.StatusUnauthorized)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if product.Name == "" || product.CategoryID == 0 {
		http.Error(w, "name and category_id are required", http.StatusBadRequest)
		return
	}
	product.VendorID = userID

	created, err := h.Service.CreateProduct(r.Context(), product)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			http.Error(w, "category does not exist", http.StatusBadRequest)
			return
		}
		if isDuplicateEntryError(err) {
			http.Error(w, "product slug already exists", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	slug := getParam(r, "slug")
	if slug == "" {
		http.Error(w, "Missing product slug", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	product.Slug = slug

	updated, err := h.Service.UpdateProduct(r.Context(), product)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	slug := getParam(r, "slug")
	if slug == "" {
		http.Error(w, "Missing product slug", http.StatusBadRequest)
		return
	}

	err := h.Service.DeleteProduct(r.Context(), slug)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadProductImage stores a product image and sets it as the main image.
func (h *ProductHandler) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	slug := getParam(r, "slug")
	if slug == "" {
		http.Error(w, "Missing product slug", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageURL, err := uploadImage(file, header.Filename, "products")
	if err != nil {
		http.Error(w, "cannot save image", http.StatusInternalServerError)
		return
	}

	product, err := h.Service.GetProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	product.MainImage = imageURL

	updated, err := h.Service.UpdateProduct(r.Context(), product)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}
