package profileRepository

const (
	queryGetByID = `
SELECT id, email, name, phone_number, address, bio, password, avatar_url, created_at, updated_at
FROM Users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, email, name, phone_number, address, bio, password, avatar_url, created_at, updated_at
FROM Users
    WHERE email = :email`

	queryUpdateProfile = `
UPDATE Users
SET name = :name,
    email = :email,
    phone_number = :phone_number,
    address = :address,
    bio = :bio,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdatePassword = `
UPDATE Users
SET password = :password,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateAvatar = `
UPDATE Users
SET avatar_url = :avatar_url,
    updated_at = :updated_at
WHERE id = :id`
)
