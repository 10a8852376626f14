package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/pkg/constants"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	departmentColumns = "id, name, parent_id, created_at, updated_at"
	employeeColumns   = "id, name, role, department_id, created_at, updated_at"
	clientColumns     = "id, company_name, contact_person, contacts, region, city, status, created_at, updated_at"
	requestColumns    = "id, client_id, manager_id, engineer_id, city, address, amount, cost, deadline, info, status, comments, tasks, attachments, activity_log, created_at, updated_at"
)

type RecordRepositoryInterface interface {
	GetDepartments(ctx context.Context) ([]entities.Department, error)
	GetEmployees(ctx context.Context) ([]entities.Employee, error)
	GetClients(ctx context.Context) ([]entities.Client, error)
	GetRequests(ctx context.Context) ([]entities.Request, error)
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error)
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.Request, error)
	UpdateRecord(ctx context.Context, res Resource, id uint64, fields map[string]interface{}) (map[string]interface{}, error)
}

type RecordRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRecordRepository(storage *pgxpool.Pool, logger *zap.Logger) RecordRepositoryInterface {
	return &RecordRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.ID, &d.Name, &d.ParentID, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования department: %w", err)
	}
	return &d, nil
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Role, &e.DepartmentID, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования employee: %w", err)
	}
	return &e, nil
}

func scanClient(row pgx.Row) (*entities.Client, error) {
	var c entities.Client
	err := row.Scan(&c.ID, &c.CompanyName, &c.ContactPerson, &c.Contacts, &c.Region, &c.City, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования client: %w", err)
	}
	return &c, nil
}

func scanRequest(row pgx.Row) (*entities.Request, error) {
	var (
		r                                        entities.Request
		comments, tasks, attachments, activities string
	)
	err := row.Scan(
		&r.ID, &r.ClientID, &r.ManagerID, &r.EngineerID, &r.City, &r.Address,
		&r.Amount, &r.Cost, &r.Deadline, &r.Info, &r.Status,
		&comments, &tasks, &attachments, &activities,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования request: %w", err)
	}
	r.Comments = json.RawMessage(comments)
	r.Tasks = json.RawMessage(tasks)
	r.Attachments = json.RawMessage(attachments)
	r.ActivityLog = json.RawMessage(activities)
	return &r, nil
}

// Списки стабильно упорядочены по id создания.

func (r *RecordRepository) GetDepartments(ctx context.Context) ([]entities.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments ORDER BY id ASC`, departmentColumns)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	departments := make([]entities.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *d)
	}
	return departments, rows.Err()
}

func (r *RecordRepository) GetEmployees(ctx context.Context) ([]entities.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees ORDER BY id ASC`, employeeColumns)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	employees := make([]entities.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *RecordRepository) GetClients(ctx context.Context) ([]entities.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients ORDER BY id ASC`, clientColumns)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	clients := make([]entities.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func (r *RecordRepository) GetRequests(ctx context.Context) ([]entities.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM requests ORDER BY id ASC`, requestColumns)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	requests := make([]entities.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *RecordRepository) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	query := fmt.Sprintf(`INSERT INTO departments (name, parent_id) VALUES ($1, $2) RETURNING %s`, departmentColumns)
	return scanDepartment(r.storage.QueryRow(ctx, query, payload.Name, payload.ParentID.Ptr()))
}

func (r *RecordRepository) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error) {
	query := fmt.Sprintf(`INSERT INTO employees (name, role, department_id) VALUES ($1, $2, $3) RETURNING %s`, employeeColumns)
	return scanEmployee(r.storage.QueryRow(ctx, query, payload.Name, payload.Role, payload.DepartmentID.Ptr()))
}

func (r *RecordRepository) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error) {
	status := payload.Status
	if status == "" {
		status = constants.ClientStatusLead
	}
	query := fmt.Sprintf(`INSERT INTO clients (company_name, contact_person, contacts, region, city, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING %s`, clientColumns)
	return scanClient(r.storage.QueryRow(ctx, query,
		payload.CompanyName, payload.ContactPerson, payload.Contacts, payload.Region, payload.City, status))
}

func (r *RecordRepository) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.Request, error) {
	status := payload.Status
	if status == "" {
		status = constants.RequestStatusNew
	}

	var deadline *string
	if payload.Deadline.Valid && payload.Deadline.String != "" {
		deadline = utils.ToPtr(payload.Deadline.String)
	}

	query := fmt.Sprintf(`INSERT INTO requests
		(client_id, manager_id, engineer_id, city, address, amount, cost, deadline, info, status, comments, tasks, attachments, activity_log)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING %s`, requestColumns)
	return scanRequest(r.storage.QueryRow(ctx, query,
		payload.ClientID, payload.ManagerID.Ptr(), payload.EngineerID.Ptr(),
		payload.City, payload.Address, payload.Amount.Ptr(), payload.Cost.Ptr(),
		deadline, payload.Info, status,
		rawArrayOrEmpty(payload.Comments), rawArrayOrEmpty(payload.Tasks),
		rawArrayOrEmpty(payload.Attachments), rawArrayOrEmpty(payload.ActivityLog)))
}

func rawArrayOrEmpty(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return "[]"
	}
	return string(raw)
}

// UpdateRecord — единый generic-путь обновления для всех четырёх ресурсов.
// Один атомарный UPDATE ровно по уцелевшим полям; ноль затронутых строк
// означает отсутствие записи.
func (r *RecordRepository) UpdateRecord(ctx context.Context, res Resource, id uint64, fields map[string]interface{}) (map[string]interface{}, error) {
	query, args, err := buildUpdateQuery(res, id, fields)
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка обновления %s: %w", res.Table(), err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("ошибка обновления %s: %w", res.Table(), err)
		}
		return nil, apperrors.ErrNotFound
	}

	record, err := scanRecordRow(rows, res)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("запись обновлена",
		zap.String("resource", res.Table()),
		zap.Uint64("id", id),
		zap.Int("fields", len(fields)))
	return record, nil
}

// scanRecordRow превращает строку RETURNING * в camelCase-словарь;
// сериализованные коллекции разбираются обратно в массивы.
func scanRecordRow(rows pgx.Rows, res Resource) (map[string]interface{}, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения строки %s: %w", res.Table(), err)
	}

	record := make(map[string]interface{}, len(values))
	for i, fd := range rows.FieldDescriptions() {
		key := utils.ToCamelCase(fd.Name)
		value := values[i]
		if res.IsStructuredField(key) {
			if text, ok := value.(string); ok {
				var parsed interface{}
				if err := json.Unmarshal([]byte(text), &parsed); err == nil {
					value = parsed
				}
			}
		}
		record[key] = value
	}
	return record, nil
}
