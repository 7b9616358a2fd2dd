/*
Package utils contains decorators shared by every application stack:
panic recovery, logging, savepoints and event tagging.
*/
package utils
