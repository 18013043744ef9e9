package sqlinline

const QInsertProject = `--sql dc5d7e38-f912-4c5b-8faa-adc9ea0f8faf
insert into projects(id, title, description, location, status, progress, target_date, volunteers_needed, current_volunteers, before_image, after_image, created_at, updated_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, $6::int, $7::date, $8::int, 0, $9::text, $10::text, now(), now())
returning current_volunteers, created_at, updated_at;
`

// QListProjects treats an empty status or location as "no filter". The
// location pattern must already have its LIKE wildcards escaped.
const QListProjects = `--sql d9f4833d-a225-4123-acc0-e850d0ff68a3
select id::text, title, description, location, status, progress, target_date, volunteers_needed,
       current_volunteers, before_image, after_image, created_at, updated_at
from projects
where ($1::text = '' or status = $1::text)
  and ($2::text = '' or location ilike '%' || $2::text || '%')
order by created_at desc
limit $3::int;
`
