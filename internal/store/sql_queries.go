package store

const (
	createUser = `INSERT INTO users (login, name, password_hash, image, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, login, name, password_hash, image, role, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, image, role, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, name, password_hash, image, role, created_at
    FROM users
    WHERE user_id = $1;`

	getUserRole = `SELECT role
    FROM users
    WHERE user_id = $1;`
)
