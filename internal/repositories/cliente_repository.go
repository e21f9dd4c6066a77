package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/SantoTourViagens/santo-tour-agency/internal/config"
	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

// ClienteRepository wraps DB access for the clientes registry.
type ClienteRepository struct {
	DB *sql.DB
}

func (r ClienteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const clienteCols = "id, cpf, nome, telefone, datanascimento, bairro, cidade, localembarque, enderecoembarque, indicadopor"

func scanCliente(row *sql.Row) (domain.Cliente, error) {
	var c domain.Cliente
	err := row.Scan(&c.ID, &c.CPF, &c.Nome, &c.Telefone, &c.DataNascimento,
		&c.Bairro, &c.Cidade, &c.LocalEmbarque, &c.EnderecoEmbarque, &c.IndicadoPor)
	return c, err
}

func (r ClienteRepository) List() ([]domain.Cliente, error) {
	rows, err := r.db().Query(`SELECT ` + clienteCols + ` FROM clientes ORDER BY nome ASC`)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer rows.Close()

	out := []domain.Cliente{}
	for rows.Next() {
		var c domain.Cliente
		if err := rows.Scan(&c.ID, &c.CPF, &c.Nome, &c.Telefone, &c.DataNascimento,
			&c.Bairro, &c.Cidade, &c.LocalEmbarque, &c.EnderecoEmbarque, &c.IndicadoPor); err != nil {
			return nil, fmt.Errorf("ler cliente: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ClienteRepository) GetByID(id int64) (domain.Cliente, error) {
	c, err := scanCliente(r.db().QueryRow(`SELECT `+clienteCols+` FROM clientes WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cliente{}, domain.NotFoundError{Resource: "cliente", Err: err}
	}
	return c, err
}

// GetByCPF backs the passenger form pre-fill lookup.
func (r ClienteRepository) GetByCPF(cpf string) (domain.Cliente, error) {
	c, err := scanCliente(r.db().QueryRow(`SELECT `+clienteCols+` FROM clientes WHERE cpf=?`, cpf))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cliente{}, domain.NotFoundError{Resource: "cliente", Err: err}
	}
	return c, err
}

func (r ClienteRepository) Create(c domain.Cliente) (domain.Cliente, error) {
	res, err := r.db().Exec(`
		INSERT INTO clientes (cpf, nome, telefone, datanascimento, bairro, cidade, localembarque, enderecoembarque, indicadopor)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		c.CPF, c.Nome, c.Telefone, c.DataNascimento, c.Bairro, c.Cidade,
		c.LocalEmbarque, c.EnderecoEmbarque, c.IndicadoPor)
	if err != nil {
		if isDuplicateEntry(err) {
			return c, domain.ConflictError{Resource: "cliente", Msg: "cpf ja cadastrado"}
		}
		return c, fmt.Errorf("inserir cliente: %w", err)
	}
	c.ID, _ = res.LastInsertId()
	return c, nil
}

func (r ClienteRepository) Update(c domain.Cliente) (domain.Cliente, error) {
	res, err := r.db().Exec(`
		UPDATE clientes SET cpf=?, nome=?, telefone=?, datanascimento=?, bairro=?, cidade=?,
			localembarque=?, enderecoembarque=?, indicadopor=?
		WHERE id=?`,
		c.CPF, c.Nome, c.Telefone, c.DataNascimento, c.Bairro, c.Cidade,
		c.LocalEmbarque, c.EnderecoEmbarque, c.IndicadoPor, c.ID)
	if err != nil {
		if isDuplicateEntry(err) {
			return c, domain.ConflictError{Resource: "cliente", Msg: "cpf ja cadastrado"}
		}
		return c, fmt.Errorf("atualizar cliente: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(c.ID); err != nil {
			return c, err
		}
	}
	return c, nil
}

func (r ClienteRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM clientes WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("remover cliente: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "cliente"}
	}
	return nil
}

// isDuplicateEntry reports MySQL error 1062 (unique key violation).
func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
