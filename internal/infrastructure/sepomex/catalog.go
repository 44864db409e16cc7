// Package sepomex lee el Catálogo Nacional de Códigos Postales (CPdescarga.txt)
// y lo convierte en los catálogos de estados, municipios y colonias.
package sepomex

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// Columnas usadas del archivo (la cabecera trae más).
const (
	colSettlement    = "d_asenta"
	colMunicipality  = "D_mnpio"
	colState         = "d_estado"
	colStateCode     = "c_estado"
	colMunicipalCode = "c_mnpio"
	colSettlementID  = "id_asenta_cpcons"
)

var requiredColumns = []string{
	colSettlement, colMunicipality, colState, colStateCode, colMunicipalCode, colSettlementID,
}

// ErrNoHeader el archivo no contiene la cabecera d_codigo|...
var ErrNoHeader = errors.New("sepomex: cabecera no encontrada")

// Catalog catálogos deduplicados y ordenados por ID.
// IDs: estado = c_estado, municipio = c_estado+c_mnpio, colonia = municipio+id_asenta_cpcons.
type Catalog struct {
	States         []entity.State
	Municipalities []entity.Municipality
	Neighborhoods  []entity.Neighborhood
}

// Parse lee el archivo en ISO-8859-1 separado por '|'. Las líneas previas a la
// cabecera (nota legal) se ignoran, igual que las filas sin claves.
func Parse(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.Comma = '|'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var idx map[string]int
	for idx == nil {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		if err != nil {
			return nil, fmt.Errorf("sepomex: leer cabecera: %w", err)
		}
		if len(rec) > 0 && strings.TrimSpace(rec[0]) == "d_codigo" {
			idx = headerIndex(rec)
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("sepomex: falta la columna %s", col)
		}
	}

	states := map[string]entity.State{}
	municipalities := map[string]entity.Municipality{}
	neighborhoods := map[string]entity.Neighborhood{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sepomex: leer fila: %w", err)
		}
		field := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		stateCode, munCode, setID := field(colStateCode), field(colMunicipalCode), field(colSettlementID)
		if stateCode == "" || munCode == "" || setID == "" {
			continue
		}
		munID := stateCode + munCode
		nbID := munID + setID
		states[stateCode] = entity.State{ID: stateCode, Name: field(colState)}
		municipalities[munID] = entity.Municipality{ID: munID, Name: field(colMunicipality), StateID: stateCode}
		neighborhoods[nbID] = entity.Neighborhood{ID: nbID, Name: field(colSettlement), MunicipalityID: munID}
	}

	c := &Catalog{}
	for _, s := range states {
		c.States = append(c.States, s)
	}
	for _, m := range municipalities {
		c.Municipalities = append(c.Municipalities, m)
	}
	for _, n := range neighborhoods {
		c.Neighborhoods = append(c.Neighborhoods, n)
	}
	sort.Slice(c.States, func(i, j int) bool { return c.States[i].ID < c.States[j].ID })
	sort.Slice(c.Municipalities, func(i, j int) bool { return c.Municipalities[i].ID < c.Municipalities[j].ID })
	sort.Slice(c.Neighborhoods, func(i, j int) bool { return c.Neighborhoods[i].ID < c.Neighborhoods[j].ID })
	return c, nil
}

func headerIndex(rec []string) map[string]int {
	idx := make(map[string]int, len(rec))
	for i, name := range rec {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

// WriteSQL escribe los INSERT idempotentes para las tablas states, municipalities y neighborhoods.
func (c *Catalog) WriteSQL(w io.Writer) error {
	var b strings.Builder
	b.WriteString("-- Estados, municipios y colonias (Catálogo Nacional de Códigos Postales)\n\n")

	for _, s := range c.States {
		fmt.Fprintf(&b, "INSERT INTO states (id, name) VALUES ('%s', '%s') ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;\n",
			escapeSQL(s.ID), escapeSQL(s.Name))
	}
	b.WriteString("\n")
	for _, m := range c.Municipalities {
		fmt.Fprintf(&b, "INSERT INTO municipalities (id, name, state_id) VALUES ('%s', '%s', '%s') ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;\n",
			escapeSQL(m.ID), escapeSQL(m.Name), escapeSQL(m.StateID))
	}
	b.WriteString("\n")
	for _, n := range c.Neighborhoods {
		fmt.Fprintf(&b, "INSERT INTO neighborhoods (id, name, municipality_id) VALUES ('%s', '%s', '%s') ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;\n",
			escapeSQL(n.ID), escapeSQL(n.Name), escapeSQL(n.MunicipalityID))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
