package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm-system/internal/dto"
	"crm-system/pkg/constants"
)

type ReportRepositoryInterface interface {
	GetRequestsReport(ctx context.Context) ([]dto.RequestReportRow, error)
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

func (r *ReportRepository) GetRequestsReport(ctx context.Context) ([]dto.RequestReportRow, error) {
	query := `SELECT r.id, c.company_name, m.name, e.name, r.city, r.address,
			r.amount, r.cost, r.deadline, r.status, r.created_at
		FROM requests AS r
		JOIN clients AS c ON c.id = r.client_id
		LEFT JOIN employees AS m ON m.id = r.manager_id
		LEFT JOIN employees AS e ON e.id = r.engineer_id
		ORDER BY r.id ASC`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки отчета: %w", err)
	}
	defer rows.Close()

	report := make([]dto.RequestReportRow, 0)
	for rows.Next() {
		var row dto.RequestReportRow
		if err := rows.Scan(&row.ID, &row.CompanyName, &row.ManagerName, &row.EngineerName,
			&row.City, &row.Address, &row.Amount, &row.Cost, &row.Deadline, &row.Status, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки отчета: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

func (r *ReportRepository) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	stats := &dto.DashboardDTO{
		ClientsByStatus:  make(map[string]uint64),
		RequestsByStatus: make(map[string]uint64),
	}

	rows, err := r.storage.Query(ctx, `SELECT status, COUNT(*) FROM clients GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ClientsByStatus[status] = count
		stats.TotalClients += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.storage.Query(ctx, `SELECT status, COUNT(*) FROM requests GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.RequestsByStatus[status] = count
		stats.TotalRequests += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query, args, err := dealsAmountQuery()
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&stats.DealsAmount); err != nil {
		return nil, err
	}

	return stats, nil
}

// Доход считается только по выигранным сделкам, как на дашборде UI:
// заявки в работе и проигранные в сумму не попадают.
func dealsAmountQuery() (string, []interface{}, error) {
	return sq.Select("COALESCE(SUM(amount), 0)").
		From("requests").
		Where(sq.Eq{"status": constants.SuccessfulDealStatuses}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
