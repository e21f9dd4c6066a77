package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

func clienteRows(c domain.Cliente) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "cpf", "nome", "telefone", "datanascimento",
		"bairro", "cidade", "localembarque", "enderecoembarque", "indicadopor",
	}).AddRow(c.ID, c.CPF, c.Nome, c.Telefone, c.DataNascimento,
		c.Bairro, c.Cidade, c.LocalEmbarque, c.EnderecoEmbarque, c.IndicadoPor)
}

func TestClienteGetByCPF(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	want := domain.Cliente{
		ID: 9, CPF: "12345678901", Nome: "Maria Souza",
		Cidade: "Campinas", LocalEmbarque: "Rodoviária",
	}
	mock.ExpectQuery("SELECT (.+) FROM clientes WHERE cpf=").
		WithArgs("12345678901").
		WillReturnRows(clienteRows(want))

	repo := ClienteRepository{DB: db}
	got, err := repo.GetByCPF("12345678901")
	if err != nil {
		t.Fatalf("GetByCPF error: %v", err)
	}
	if got != want {
		t.Fatalf("GetByCPF = %+v, want %+v", got, want)
	}
}

func TestClienteGetByCPFNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM clientes WHERE cpf=").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := ClienteRepository{DB: db}
	if _, err := repo.GetByCPF("00000000000"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClienteCreateDuplicateCPF(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO clientes").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	repo := ClienteRepository{DB: db}
	if _, err := repo.Create(domain.Cliente{CPF: "12345678901", Nome: "Maria"}); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestClienteDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM clientes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := ClienteRepository{DB: db}
	if err := repo.Delete(999); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
