package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/threadspun/tailorstore/internal/adapters/export"
	"github.com/threadspun/tailorstore/internal/domain"
	"github.com/threadspun/tailorstore/internal/usecase"
)

type Server struct {
	mux     *http.ServeMux
	catalog *usecase.CatalogUC
	orders  *usecase.OrderUC
	storage domain.FileStorage
}

func New(catalog *usecase.CatalogUC, orders *usecase.OrderUC, storage domain.FileStorage) http.Handler {
	s := &Server{mux: http.NewServeMux(), catalog: catalog, orders: orders, storage: storage}
	s.routes()
	return s.mux
}

func (s *Server) routes() {
	s.mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir()))))

	s.mux.HandleFunc("/healthz", s.handleHealth)

	s.mux.HandleFunc("/api/designs", s.apiDesigns)
	s.mux.HandleFunc("/api/designs/browse", s.apiDesignsBrowse)
	s.mux.HandleFunc("/api/designs/", s.apiDesignByID)

	s.mux.HandleFunc("/api/orders", s.apiOrders)
	s.mux.HandleFunc("/api/orders/", s.apiOrderByID)

	s.mux.HandleFunc("/admin/export/csv", s.handleExportCSV)
	s.mux.HandleFunc("/admin/export/xlsx", s.handleExportXLSX)
	s.mux.HandleFunc("/admin/export/images.zip", s.handleExportImages)
}

func uploadsDir() string {
	if dir := os.Getenv("STORAGE_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, 404, map[string]any{"status": "error", "message": "not found"})
	case errors.Is(err, domain.ErrInvalidConstraint), errors.Is(err, domain.ErrEmptySelection):
		writeJSON(w, 400, map[string]any{"status": "error", "message": err.Error()})
	case errors.Is(err, domain.ErrAlreadyProcessed):
		writeJSON(w, 409, map[string]any{"status": "error", "message": "order already processed"})
	default:
		writeJSON(w, 500, map[string]any{"status": "error", "message": "internal error"})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, map[string]any{"status": "ok"})
}

func (s *Server) apiDesigns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.catalog.List(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("list designs")
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
	case http.MethodPost:
		var req struct {
			Name      string             `json:"name"`
			Color     string             `json:"color"`
			Fabric    string             `json:"fabric"`
			ImageURL  string             `json:"image_url"`
			ChildType domain.ChildType   `json:"child_type"`
			Label     string             `json:"label"`
			Inventory domain.StockMatrix `json:"inventory"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, 400, map[string]any{"status": "error", "message": "invalid json"})
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeJSON(w, 400, map[string]any{"status": "error", "message": "name required"})
			return
		}
		d := &domain.Design{
			Name: req.Name, Color: req.Color, Fabric: req.Fabric,
			ImageURL: req.ImageURL, ChildType: req.ChildType, Label: req.Label,
			Inventory: req.Inventory,
		}
		if err := s.catalog.Create(r.Context(), d); err != nil {
			log.Error().Err(err).Msg("create design")
			writeError(w, err)
			return
		}
		writeJSON(w, 201, d)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiDesignsBrowse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req usecase.BrowseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]any{"status": "error", "message": "invalid json"})
		return
	}
	items, err := s.catalog.Browse(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"items": items, "total": len(items)})
}

// apiDesignByID also handles the nested stock and image endpoints:
// /api/designs/{id}, /api/designs/{id}/stock, /api/designs/{id}/image.
func (s *Server) apiDesignByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/designs/")
	idStr, sub, _ := strings.Cut(rest, "/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch sub {
	case "stock":
		s.apiDesignStock(w, r, id)
		return
	case "image":
		s.apiDesignImage(w, r, id)
		return
	case "":
	default:
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		d, err := s.catalog.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, d)
	case http.MethodPut:
		d, err := s.catalog.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		var req struct {
			Name      *string             `json:"name"`
			Color     *string             `json:"color"`
			Fabric    *string             `json:"fabric"`
			ImageURL  *string             `json:"image_url"`
			ChildType *domain.ChildType   `json:"child_type"`
			Label     *string             `json:"label"`
			Inventory *domain.StockMatrix `json:"inventory"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, 400, map[string]any{"status": "error", "message": "invalid json"})
			return
		}
		if req.Name != nil {
			d.Name = *req.Name
		}
		if req.Color != nil {
			d.Color = *req.Color
		}
		if req.Fabric != nil {
			d.Fabric = *req.Fabric
		}
		if req.ImageURL != nil {
			d.ImageURL = *req.ImageURL
		}
		if req.ChildType != nil {
			d.ChildType = *req.ChildType
		}
		if req.Label != nil {
			d.Label = *req.Label
		}
		if req.Inventory != nil {
			d.Inventory = *req.Inventory
		}
		if err := s.catalog.Update(r.Context(), d); err != nil {
			log.Error().Err(err).Str("design_id", id.String()).Msg("update design")
			writeError(w, err)
			return
		}
		writeJSON(w, 200, d)
	case http.MethodDelete:
		if err := s.catalog.Delete(r.Context(), id); err != nil {
			log.Error().Err(err).Str("design_id", id.String()).Msg("delete design")
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"status": "ok", "deleted": id})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiDesignStock(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		Category domain.Category `json:"category"`
		Size     string          `json:"size"`
		Count    *int            `json:"count"`
		Delta    *int            `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]any{"status": "error", "message": "invalid json"})
		return
	}
	var (
		d   *domain.Design
		err error
	)
	switch {
	case req.Count != nil:
		d, err = s.catalog.SetStock(r.Context(), id, req.Category, req.Size, *req.Count)
	case req.Delta != nil:
		d, err = s.catalog.AdjustStock(r.Context(), id, req.Category, req.Size, *req.Delta)
	default:
		writeJSON(w, 400, map[string]any{"status": "error", "message": "count or delta required"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, d)
}

func (s *Server) apiDesignImage(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, 400, map[string]any{"status": "error", "message": "multipart form required"})
		return
	}
	file, fh, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, 400, map[string]any{"status": "error", "message": "image file required"})
		return
	}
	defer file.Close()
	d, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	path, err := s.storage.Save(fh.Filename, file)
	if err != nil {
		log.Error().Err(err).Str("file", fh.Filename).Msg("store image")
		writeJSON(w, 500, map[string]any{"status": "error", "message": "storage failed"})
		return
	}
	if d.ImageURL != "" && strings.HasPrefix(d.ImageURL, "/uploads/") {
		_ = s.storage.Remove(d.ImageURL)
	}
	d.ImageURL = path
	if err := s.catalog.Update(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"status": "ok", "image_url": path})
}

// orderView is an order with its design name resolved for display. Orders
// whose design is gone show "Unknown Design".
type orderView struct {
	domain.Order
	DesignName string `json:"design_name"`
}

func (s *Server) apiOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.orders.List(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("list orders")
			writeError(w, err)
			return
		}
		names := map[uuid.UUID]string{}
		if designs, err := s.catalog.List(r.Context()); err == nil {
			for _, d := range designs {
				names[d.ID] = d.Name
			}
		}
		views := make([]orderView, 0, len(list))
		for _, o := range list {
			name, ok := names[o.DesignID]
			if !ok {
				name = "Unknown Design"
			}
			views = append(views, orderView{Order: o, DesignName: name})
		}
		writeJSON(w, 200, map[string]any{"items": views, "total": len(views)})
	case http.MethodPost:
		var req usecase.PlaceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, 400, map[string]any{"status": "error", "message": "invalid json"})
			return
		}
		o, err := s.orders.Place(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		go func(o domain.Order) {
			if err := sendOrderEmail(&o); err != nil {
				log.Error().Err(err).Str("order_id", o.ID.String()).Msg("order email")
			}
		}(*o)
		writeJSON(w, 201, o)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiOrderByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	idStr, action, _ := strings.Cut(rest, "/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	switch action {
	case "accept":
		o, outcomes, err := s.orders.Accept(r.Context(), id)
		if err != nil {
			if !errors.Is(err, domain.ErrAlreadyProcessed) {
				log.Error().Err(err).Str("order_id", id.String()).Msg("accept order")
			}
			writeError(w, err)
			return
		}
		skipped := len(outcomes) - domain.Deductions(outcomes)
		if skipped > 0 {
			log.Warn().Str("order_id", id.String()).Int("skipped", skipped).Msg("accepted with insufficient stock")
		}
		writeJSON(w, 200, map[string]any{"order": o, "outcomes": outcomes})
	case "reject":
		o, err := s.orders.Reject(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"order": o})
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	designs, err := s.catalog.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=tailor_inventory_"+time.Now().Format("2006-01-02")+".csv")
	if err := export.InventoryCSV(w, designs); err != nil {
		log.Error().Err(err).Msg("export csv")
	}
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	designs, err := s.catalog.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	f, err := export.InventoryXLSX(designs)
	if err != nil {
		log.Error().Err(err).Msg("export xlsx")
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=tailor_inventory_"+time.Now().Format("2006-01-02")+".xlsx")
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("export xlsx write")
	}
}

func (s *Server) handleExportImages(w http.ResponseWriter, r *http.Request) {
	designs, err := s.catalog.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=tailor_designs_images_"+time.Now().Format("2006-01-02")+".zip")
	if err := export.ImagesZip(w, designs, s.storage.Open); err != nil {
		log.Error().Err(err).Msg("export images")
	}
}

func sendOrderEmail(o *domain.Order) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	to := os.Getenv("ORDER_NOTIFY_EMAIL")
	if host == "" || port == "" || user == "" || pass == "" || to == "" {
		log.Warn().Msg("SMTP not configured, skipping order email")
		return nil
	}
	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "Subject: New order #%s\r\n", o.ID.String())
	_, _ = fmt.Fprintf(&buf, "From: %s\r\n", user)
	_, _ = fmt.Fprintf(&buf, "To: %s\r\n", to)
	buf.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	_, _ = fmt.Fprintf(&buf, "Order: %s\n", o.ID)
	_, _ = fmt.Fprintf(&buf, "Combo: %s\n", o.ComboType)
	_, _ = fmt.Fprintf(&buf, "Customer: %s\nEmail: %s\nPhone: %s %s\nAddress: %s\n", o.Name, o.Email, o.CountryCode, o.Phone, o.Address)
	buf.WriteString("Sizes:\n")
	for _, role := range o.Sizes.Roles() {
		_, _ = fmt.Fprintf(&buf, "- %s: %s\n", role, o.Sizes[role])
	}
	auth := smtp.PlainAuth("", user, pass, host)
	return smtp.SendMail(host+":"+port, auth, user, []string{to}, buf.Bytes())
}
