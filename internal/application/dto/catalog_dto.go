package dto

import "time"

// ---- Produtos (almoxarifado) ----

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Location string `json:"location"`
	ImageURL string `json:"image_url"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionais).
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Unit     *string `json:"unit"`
	Location *string `json:"location"`
	ImageURL *string `json:"image_url"`
}

// ProductResponse representação de Product nas respostas.
type ProductResponse struct {
	ID        string    `json:"id"`
	FarmID    string    `json:"farm_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Location  string    `json:"location"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse listagem paginada.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ---- Defensivos ----

// CreateAgrochemicalRequest body para POST /api/agrochemicals.
type CreateAgrochemicalRequest struct {
	Name           string `json:"name"`
	NCMCode        string `json:"ncm_code"`
	Category       string `json:"category"` // vazio = inferida por NCM/descrição
	Unit           string `json:"unit"`
	Manufacturer   string `json:"manufacturer"`
	RegistryNumber string `json:"registry_number"`
	ToxicityClass  string `json:"toxicity_class"`
	Location       string `json:"location"`
}

// UpdateAgrochemicalRequest body para PUT /api/agrochemicals/:id.
type UpdateAgrochemicalRequest struct {
	Name           *string `json:"name"`
	NCMCode        *string `json:"ncm_code"`
	Category       *string `json:"category"`
	Unit           *string `json:"unit"`
	Manufacturer   *string `json:"manufacturer"`
	RegistryNumber *string `json:"registry_number"`
	ToxicityClass  *string `json:"toxicity_class"`
	Location       *string `json:"location"`
}

// AgrochemicalResponse representação de Agrochemical nas respostas.
type AgrochemicalResponse struct {
	ID             string    `json:"id"`
	FarmID         string    `json:"farm_id"`
	Name           string    `json:"name"`
	NCMCode        string    `json:"ncm_code,omitempty"`
	Category       string    `json:"category"`
	Unit           string    `json:"unit"`
	Manufacturer   string    `json:"manufacturer,omitempty"`
	RegistryNumber string    `json:"registry_number,omitempty"`
	ToxicityClass  string    `json:"toxicity_class,omitempty"`
	Location       string    `json:"location,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AgrochemicalListResponse listagem paginada.
type AgrochemicalListResponse struct {
	Items []AgrochemicalResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// ---- Máquinas ----

// CreateMachineRequest body para POST /api/machines.
type CreateMachineRequest struct {
	Name  string `json:"name"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Year  int    `json:"year"`
}

// UpdateMachineRequest body para PUT /api/machines/:id.
type UpdateMachineRequest struct {
	Name   *string `json:"name"`
	Model  *string `json:"model"`
	Plate  *string `json:"plate"`
	Year   *int    `json:"year"`
	Active *bool   `json:"active"`
}

// MachineResponse representação de Machine nas respostas.
type MachineResponse struct {
	ID        string    `json:"id"`
	FarmID    string    `json:"farm_id"`
	Name      string    `json:"name"`
	Model     string    `json:"model,omitempty"`
	Plate     string    `json:"plate,omitempty"`
	Year      int       `json:"year,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MachineListResponse listagem paginada.
type MachineListResponse struct {
	Items []MachineResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ---- Funcionários ----

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

// UpdateEmployeeRequest body para PUT /api/employees/:id.
type UpdateEmployeeRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Phone  *string `json:"phone"`
	Active *bool   `json:"active"`
}

// EmployeeResponse representação de Employee nas respostas.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	FarmID    string    `json:"farm_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmployeeListResponse listagem paginada.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ---- Talhões ----

// CreateFieldRequest body para POST /api/fields.
type CreateFieldRequest struct {
	Name   string `json:"name"`
	AreaHa string `json:"area_ha"` // decimal como string
	Notes  string `json:"notes"`
}

// UpdateFieldRequest body para PUT /api/fields/:id.
type UpdateFieldRequest struct {
	Name   *string `json:"name"`
	AreaHa *string `json:"area_ha"`
	Notes  *string `json:"notes"`
}

// FieldResponse representação de Field nas respostas.
type FieldResponse struct {
	ID        string    `json:"id"`
	FarmID    string    `json:"farm_id"`
	Name      string    `json:"name"`
	AreaHa    string    `json:"area_ha"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FieldListResponse listagem paginada.
type FieldListResponse struct {
	Items []FieldResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ---- Fazendas ----

// CreateFarmRequest body para POST /api/farms.
type CreateFarmRequest struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
	City  string `json:"city"`
	State string `json:"state"`
}

// FarmResponse representação de Farm nas respostas.
type FarmResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FarmListResponse listagem paginada.
type FarmListResponse struct {
	Items []FarmResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
