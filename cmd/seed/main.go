// seed genera un script SQL de datos demo a partir de un CSV de productos
// (exportado típicamente desde Excel en ISO-8859-1). Crea una cuenta admin,
// unidades y categorías referenciadas, y cada producto con su entrada
// STOCK-IN inicial para que el stock y el libro de movimientos arranquen
// consistentes.
//
// Formato del CSV (con cabecera): nombre;categoria;unidad;costo;stock
//
// Uso: go run ./cmd/seed [ruta/productos.csv]
// Por defecto busca productos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type productRow struct {
	name     string
	category string
	unit     string
	cost     string
	stock    int64
}

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports de Excel en locales es-* suelen venir en ISO-8859-1 con ';'
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	var products []productRow
	for i, rec := range records[1:] { // salta cabecera
		if len(rec) < 5 {
			fmt.Fprintf(os.Stderr, "fila %d: se esperan 5 columnas\n", i+2)
			os.Exit(1)
		}
		stock, err := strconv.ParseInt(strings.TrimSpace(rec[4]), 10, 64)
		if err != nil || stock < 0 {
			fmt.Fprintf(os.Stderr, "fila %d: stock inválido %q\n", i+2, rec[4])
			os.Exit(1)
		}
		cost := strings.TrimSpace(strings.ReplaceAll(rec[3], ",", "."))
		if _, err := strconv.ParseFloat(cost, 64); err != nil {
			fmt.Fprintf(os.Stderr, "fila %d: costo inválido %q\n", i+2, rec[3])
			os.Exit(1)
		}
		products = append(products, productRow{
			name:     strings.TrimSpace(rec[0]),
			category: strings.TrimSpace(rec[1]),
			unit:     strings.TrimSpace(rec[2]),
			cost:     cost,
			stock:    stock,
		})
	}

	// Catálogos únicos en orden estable
	catSet := make(map[string]bool)
	unitSet := make(map[string]bool)
	for _, p := range products {
		catSet[p.category] = true
		unitSet[p.unit] = true
	}
	categories := sortedKeys(catSet)
	units := sortedKeys(unitSet)

	adminID := uuid.New().String()

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Datos demo generados desde %s\n", filepath.Base(csvPath))
	out.WriteString("-- Admin demo: usuario 'demo', contraseña 'demo'\n\n")

	out.WriteString("-- 1. Cuenta admin (tenant)\n")
	fmt.Fprintf(out, "INSERT INTO users (id, username, password, role, default_markup) VALUES\n")
	fmt.Fprintf(out, "  ('%s', 'demo', 'demo', 'admin', 30)\nON CONFLICT (username) DO NOTHING;\n\n", adminID)

	out.WriteString("-- 2. Unidades de medida\n")
	for _, u := range units {
		fmt.Fprintf(out, "INSERT INTO units (tenant_id, name) VALUES ('%s', '%s') ON CONFLICT DO NOTHING;\n",
			adminID, escapeSQL(u))
	}
	out.WriteString("\n-- 3. Categorías\n")
	for _, c := range categories {
		fmt.Fprintf(out, "INSERT INTO categories (tenant_id, name) VALUES ('%s', '%s') ON CONFLICT DO NOTHING;\n",
			adminID, escapeSQL(c))
	}

	out.WriteString("\n-- 4. Productos con su entrada STOCK-IN inicial\n")
	for i, p := range products {
		productID := i + 1
		fmt.Fprintf(out, "INSERT INTO products (tenant_id, product_id, name, category_id, unit, cost_price, retail_price, stock, damaged)\n")
		fmt.Fprintf(out, "SELECT '%s', %d, '%s', c.id, '%s', %s, 0, %d, 0\n",
			adminID, productID, escapeSQL(p.name), escapeSQL(p.unit), p.cost, p.stock)
		fmt.Fprintf(out, "FROM categories c WHERE c.tenant_id = '%s' AND c.name = '%s'\n", adminID, escapeSQL(p.category))
		out.WriteString("ON CONFLICT (tenant_id, product_id) DO NOTHING;\n")
		if p.stock > 0 {
			fmt.Fprintf(out, "INSERT INTO stock_ledger (id, tenant_id, product_id, delta, kind, note) VALUES\n")
			fmt.Fprintf(out, "  ('%s', '%s', %d, %d, 'STOCK-IN', 'Carga inicial');\n",
				uuid.New().String(), adminID, productID, p.stock)
		}
	}

	fmt.Printf("Generado %s: %d productos, %d categorías, %d unidades\n",
		outPath, len(products), len(categories), len(units))
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
