// Package service provides application-level services for authentication,
// profile management and course reads. The generation pipeline itself lives
// in the generation package; this layer covers everything around it.
package service
