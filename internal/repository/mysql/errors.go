package mysql

import (
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
)

const errDuplicateEntry = 1062

func isDuplicateEntry(err error) bool {
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDuplicateEntry
}
