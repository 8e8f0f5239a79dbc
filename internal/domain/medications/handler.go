package medications

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"med-catalog/internal/metrics"
	"med-catalog/internal/middleware"
	"med-catalog/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Textos de respuesta expuestos al frontend.
const (
	msgNamesNotFound = "No se encontraron nombres en Redis"
	msgMedNotFound   = "No se encontró el medicamento en Redis"
	msgCreated       = "Datos almacenados en Redis correctamente"
	msgUpdated       = "Datos actualizados en Redis correctamente"
	msgDeleted       = "Medicamento eliminado de Redis correctamente"
	msgInternal      = "Error interno del servidor"
	msgInvalidJSON   = "invalid json"
)

type handlerDeps struct {
	svc     *Service
	log     logger.Logger
	metrics *metrics.Metrics
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, m *metrics.Metrics) {
	d := handlerDeps{svc: svc, log: log, metrics: m}

	r.Get("/names", listNamesHandler(d))

	r.Route("/med", func(mr chi.Router) {
		mr.Post("/", createMedicationHandler(d))

		mr.Get("/{name}", getMedicationHandler(d))
		mr.Put("/{name}", updateMedicationHandler(d))
		mr.Delete("/{name}", deleteMedicationHandler(d))
	})
}

// fieldValue acepta cualquier valor JSON y lo guarda como texto:
// 500 -> "500", true -> "true", null -> "". Objetos y arrays quedan como JSON compacto.
type fieldValue string

func (f *fieldValue) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*f = ""
	case string:
		*f = fieldValue(t)
	case json.Number:
		*f = fieldValue(t.String())
	case bool:
		*f = fieldValue(strconv.FormatBool(t))
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return err
		}
		*f = fieldValue(buf.String())
	}
	return nil
}

// updateMedicationRequest es el cuerpo para reemplazar la ficha; el nombre va en el path.
type updateMedicationRequest struct {
	Dosage fieldValue `json:"dosage" swaggertype:"string"`
	Via    fieldValue `json:"via" swaggertype:"string"`
	Adult  fieldValue `json:"adult" swaggertype:"string"`
	Ped    fieldValue `json:"ped" swaggertype:"string"`
	GPO90  fieldValue `json:"gpo90" swaggertype:"string"`
}

// createMedicationRequest es el cuerpo para registrar un medicamento.
type createMedicationRequest struct {
	Name fieldValue `json:"name" swaggertype:"string"`
	updateMedicationRequest
}

func (in updateMedicationRequest) input() Input {
	return Input{
		Dosage: string(in.Dosage),
		Via:    string(in.Via),
		Adult:  string(in.Adult),
		Ped:    string(in.Ped),
		GPO90:  string(in.GPO90),
	}
}

// medicationResponse documenta la forma habitual de la ficha devuelta.
// En runtime se devuelve el hash completo (puede traer campos extra).
type medicationResponse struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Via    string `json:"via"`
	Adult  string `json:"adult"`
	Ped    string `json:"ped"`
	GPO90  string `json:"gpo90"`
}

// listNamesHandler godoc
// @Summary Listar nombres de medicamentos
// @Description Devuelve la lista completa de nombres en orden de inserción. Puede contener duplicados.
// @Tags medications
// @Produce json
// @Success 200 {array} string
// @Failure 404 {string} string "No se encontraron nombres en Redis"
// @Failure 500 {string} string "Error interno del servidor"
// @Router /names [get]
func listNamesHandler(d handlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := d.svc.Names(r.Context())
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, msgNamesNotFound, http.StatusNotFound)
				return
			}
			d.storeFailure(w, r, "list_names", "", err)
			return
		}

		render.JSON(w, r, names)
	}
}

// getMedicationHandler godoc
// @Summary Obtener un medicamento
// @Description Devuelve los campos de la ficha más name. Una ficha sin campos cuenta como inexistente.
// @Tags medications
// @Produce json
// @Param name path string true "Nombre del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 404 {string} string "No se encontró el medicamento en Redis"
// @Failure 500 {string} string "Error interno del servidor"
// @Router /med/{name} [get]
func getMedicationHandler(d handlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := medName(w, r)
		if !ok {
			return
		}

		rec, err := d.svc.Get(r.Context(), name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, msgMedNotFound, http.StatusNotFound)
				return
			}
			d.storeFailure(w, r, "get", name, err)
			return
		}

		render.JSON(w, r, rec)
	}
}

// createMedicationHandler godoc
// @Summary Registrar un medicamento
// @Description Sobreescribe la ficha con los cinco campos y agrega el nombre a la lista. No verifica existencia previa: repetir el POST agrega el nombre otra vez.
// @Tags medications
// @Accept json
// @Produce plain
// @Param payload body createMedicationRequest true "Ficha del medicamento"
// @Success 200 {string} string "Datos almacenados en Redis correctamente"
// @Failure 400 {string} string "invalid json"
// @Failure 500 {string} string "Error interno del servidor"
// @Router /med [post]
func createMedicationHandler(d handlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		name := string(req.Name)
		if err := d.svc.Create(r.Context(), name, req.input()); err != nil {
			d.storeFailure(w, r, "create", name, err)
			return
		}

		d.log.Info("medicamento almacenado", map[string]any{
			"name":       name,
			"request_id": middleware.GetRequestID(r.Context()),
		})
		render.PlainText(w, r, msgCreated)
	}
}

// updateMedicationHandler godoc
// @Summary Reemplazar la ficha de un medicamento
// @Description Sobreescribe los cinco campos (no hace merge) solo si el medicamento existe.
// @Tags medications
// @Accept json
// @Produce plain
// @Param name path string true "Nombre del medicamento"
// @Param payload body updateMedicationRequest true "Campos nuevos"
// @Success 200 {string} string "Datos actualizados en Redis correctamente"
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "No se encontró el medicamento en Redis"
// @Failure 500 {string} string "Error interno del servidor"
// @Router /med/{name} [put]
func updateMedicationHandler(d handlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := medName(w, r)
		if !ok {
			return
		}

		var req updateMedicationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := d.svc.Update(r.Context(), name, req.input()); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, msgMedNotFound, http.StatusNotFound)
				return
			}
			d.storeFailure(w, r, "update", name, err)
			return
		}

		render.PlainText(w, r, msgUpdated)
	}
}

// deleteMedicationHandler godoc
// @Summary Eliminar un medicamento
// @Description Borra la ficha y todas las apariciones del nombre en la lista.
// @Tags medications
// @Produce plain
// @Param name path string true "Nombre del medicamento"
// @Success 200 {string} string "Medicamento eliminado de Redis correctamente"
// @Failure 404 {string} string "No se encontró el medicamento en Redis"
// @Failure 500 {string} string "Error interno del servidor"
// @Router /med/{name} [delete]
func deleteMedicationHandler(d handlerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := medName(w, r)
		if !ok {
			return
		}

		if err := d.svc.Delete(r.Context(), name); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, msgMedNotFound, http.StatusNotFound)
				return
			}
			d.storeFailure(w, r, "delete", name, err)
			return
		}

		render.PlainText(w, r, msgDeleted)
	}
}

// medName devuelve el nombre del path decodificado. Si el cliente escapó un "/"
// (%2F), chi rutea sobre RawPath y el parámetro llega todavía escapado.
func medName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, true
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		http.Error(w, msgMedNotFound, http.StatusNotFound)
		return "", false
	}
	return decoded, true
}

// decodeBody acepta body vacío (todos los campos quedan vacíos).
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

func (d handlerDeps) storeFailure(w http.ResponseWriter, r *http.Request, op, name string, err error) {
	d.metrics.StoreError(op)
	d.log.Error("store error", map[string]any{
		"op":         op,
		"name":       name,
		"error":      err,
		"request_id": middleware.GetRequestID(r.Context()),
	})
	http.Error(w, msgInternal, http.StatusInternalServerError)
}
