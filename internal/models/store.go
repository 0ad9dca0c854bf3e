package models

import "time"

type User struct {
	ID        string    `dynamodbav:"id" json:"id"`
	UID       string    `dynamodbav:"uid" json:"uid"`
	FullName  string    `dynamodbav:"full_name" json:"full_name"`
	Phone     string    `dynamodbav:"phone" json:"phone"`
	Password  string    `dynamodbav:"password" json:"-"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"created_at"`
}
