// Package domain contains the core entities of the course-generation system:
// user profiles, the generated course tree (courses, modules, lessons, quiz
// items, best practices) and the structured lesson content model that the
// continuation engine extends.
//
// Entities validate themselves; persistence and transport concerns live in
// the store and api packages respectively.
package domain
